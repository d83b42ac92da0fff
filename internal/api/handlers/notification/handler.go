package notification

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
	"github.com/mati-tech/microservices1112/internal/repository/notification"
	notifsvc "github.com/mati-tech/microservices1112/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	Send(context.Context, model.Notification) (model.Notification, error)
	SendNow(context.Context, model.Notification) (model.Notification, error)
	Retry(context.Context, int64) (model.Notification, error)
	GetNotification(context.Context, int64) (model.Notification, error)
	GetNotificationStatus(context.Context, int64) (model.Status, error)
	ListNotifications(ctx context.Context, filter model.Filter, offset, limit int) ([]model.Notification, error)
	ListPending(ctx context.Context, limit int) ([]model.Notification, error)
	SendTestEmail(ctx context.Context, to string) error
}

type Handler struct {
	service   notificationService
	validator *validator.Validate
}

func NewHandler(s notificationService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Send stores a notification and delivers it in the background.
func (h *Handler) Send(c *ginext.Context) {
	n, ok := h.decode(c)
	if !ok {
		return
	}

	created, err := h.service.Send(c.Request.Context(), n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", n.RecipientEmail).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// SendNow stores a notification and delivers it before responding.
func (h *Handler) SendNow(c *ginext.Context) {
	n, ok := h.decode(c)
	if !ok {
		return
	}

	sent, err := h.service.SendNow(c.Request.Context(), n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", n.RecipientEmail).Msg("failed to send notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, sent)
}

func (h *Handler) List(c *ginext.Context) {
	offset, limit, err := params.Page(c, 100)
	if err != nil {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		return
	}

	filter := model.Filter{
		RecipientEmail: c.Query("recipient_email"),
		Status:         model.Status(c.Query("status")),
		ServiceSource:  c.Query("service_source"),
	}

	if filter.Status != "" && !filter.Status.Valid() {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid status %q", filter.Status))
		return
	}

	list, err := h.service.ListNotifications(c.Request.Context(), filter, offset, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) Pending(c *ginext.Context) {
	limit, err := params.Int(c, "limit", 10, 1, 1000)
	if err != nil {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		return
	}

	list, err := h.service.ListPending(c.Request.Context(), limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list pending notifications")
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

	n, err := h.service.GetNotification(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get notification")
		return
	}

	respond.OK(c.Writer, n)
}

func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	status, err := h.service.GetNotificationStatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get notification status")
		return
	}

	respond.OK(c.Writer, StatusResponse{ID: id, Status: status})
}

// Retry moves a failed notification back to pending and dispatches it again.
func (h *Handler) Retry(c *ginext.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	n, err := h.service.Retry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notifsvc.ErrNotRetryable) {
			zlog.Logger.Warn().Err(err).Int64("id", id).Msg("notification is not retryable")
			respond.Fail(c.Writer, http.StatusBadRequest, notifsvc.ErrNotRetryable)
			return
		}

		if errors.Is(err, notifsvc.ErrDispatchUnavailable) {
			zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to dispatch retried notification")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, notifsvc.ErrDispatchUnavailable)
			return
		}

		h.fail(c, id, err, "failed to retry notification")
		return
	}

	respond.OK(c.Writer, n)
}

// TestEmail sends a probe message to the address in the email query parameter.
func (h *Handler) TestEmail(c *ginext.Context) {
	to := c.Query("email")
	if err := h.validator.Var(to, "required,email"); err != nil {
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid email: %q", to))
		return
	}

	if err := h.service.SendTestEmail(c.Request.Context(), to); err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", to).Msg("failed to send test email")
		respond.Fail(c.Writer, http.StatusInternalServerError,
			fmt.Errorf("failed to send test email, check SMTP configuration"))
		return
	}

	respond.OK(c.Writer, MessageResponse{Message: "Test email sent successfully to " + to})
}

func (h *Handler) decode(c *ginext.Context) (model.Notification, bool) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid request body"))
		return model.Notification{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("validation error: %s", err.Error()))
		return model.Notification{}, false
	}

	return req.toModel(), true
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
	if errors.Is(err, notification.ErrNotificationNotFound) {
		zlog.Logger.Warn().Err(err).Int64("id", id).Msg("notification not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification with id %d not found", id))
		return
	}

	zlog.Logger.Error().Err(err).Int64("id", id).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
