package material

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/api/params"
	"github.com/mati-tech/microservices1112/internal/api/respond"
	"github.com/mati-tech/microservices1112/internal/model"
	"github.com/mati-tech/microservices1112/internal/repository/material"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/material/mock.go -package=mocks

type materialService interface {
	CreateMaterial(context.Context, model.Material) (model.Material, error)
	GetMaterial(context.Context, int64) (model.Material, error)
	ListMaterials(ctx context.Context, filter model.MaterialFilter, offset, limit int) ([]model.Material, error)
	UpdateMaterial(ctx context.Context, id int64, u model.MaterialUpdate) (model.Material, error)
	DeactivateMaterial(context.Context, int64) (model.Material, error)
	DeleteMaterial(context.Context, int64) error
}

type Handler struct {
	service   materialService
	validator *validator.Validate
}

func NewHandler(s materialService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest
	if !h.decode(c, &req) {
		return
	}

	m, err := h.service.CreateMaterial(c.Request.Context(), req.toModel())
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create material")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, m)
}

func (h *Handler) List(c *ginext.Context) {
	offset, limit, err := params.Page(c, 100)
	if err != nil {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		return
	}

	isActive, err := params.Bool(c, "is_active")
	if err != nil {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		return
	}

	filter := model.MaterialFilter{
		Subject:    c.Query("subject"),
		GradeLevel: c.Query("grade_level"),
		IsActive:   isActive,
		Search:     c.Query("search"),
	}

	list, err := h.service.ListMaterials(c.Request.Context(), filter, offset, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list materials")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	m, err := h.service.GetMaterial(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get material")
		return
	}

	respond.OK(c.Writer, m)
}

// Update applies a partial update.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if !h.decode(c, &req) {
		return
	}

	m, err := h.service.UpdateMaterial(c.Request.Context(), id, req.toModel())
	if err != nil {
		h.fail(c, id, err, "failed to update material")
		return
	}

	respond.OK(c.Writer, m)
}

// Deactivate hides a material without deleting it.
func (h *Handler) Deactivate(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	m, err := h.service.DeactivateMaterial(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to deactivate material")
		return
	}

	respond.OK(c.Writer, m)
}

func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMaterial(c.Request.Context(), id); err != nil {
		h.fail(c, id, err, "failed to delete material")
		return
	}

	respond.NoContent(c.Writer)
}

func (h *Handler) decode(c *ginext.Context, dst any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) id(c *ginext.Context) (int64, bool) {
	id, err := params.ID(c, "id")
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		return 0, false
	}

	return id, true
}

func (h *Handler) fail(c *ginext.Context, id int64, err error, msg string) {
	if errors.Is(err, material.ErrMaterialNotFound) {
		zlog.Logger.Warn().Err(err).Int64("id", id).Msg("material not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("material with id %d not found", id))
		return
	}

	zlog.Logger.Error().Err(err).Int64("id", id).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
