package material

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/material/mock.go -package=mocks

type materialRepository interface {
	CreateMaterial(context.Context, model.Material) (model.Material, error)
	GetMaterialByID(context.Context, int64) (model.Material, error)
	ListMaterials(ctx context.Context, filter model.MaterialFilter, offset, limit int) ([]model.Material, error)
	UpdateMaterial(context.Context, model.Material) (model.Material, error)
	DeactivateMaterial(context.Context, int64) (model.Material, error)
	DeleteMaterial(context.Context, int64) error
}

type eventPublisher interface {
	MaterialCreated(ctx context.Context, id int64, title string) error
}

// Service manages the materials catalog.
type Service struct {
	repo   materialRepository
	events eventPublisher
}

// NewService creates a new Service. events may be nil to disable creation events.
func NewService(repo materialRepository, events eventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

// CreateMaterial stores a new active material and announces it.
func (s *Service) CreateMaterial(ctx context.Context, m model.Material) (model.Material, error) {
	m.IsActive = true

	created, err := s.repo.CreateMaterial(ctx, m)
	if err != nil {
		return model.Material{}, fmt.Errorf("create material: %w", err)
	}

	if s.events != nil {
		// The create has already succeeded, so the event must not inherit the request deadline.
		go s.announce(context.WithoutCancel(ctx), created)
	}

	return created, nil
}

// GetMaterial returns a material by id.
func (s *Service) GetMaterial(ctx context.Context, id int64) (model.Material, error) {
	m, err := s.repo.GetMaterialByID(ctx, id)
	if err != nil {
		return model.Material{}, fmt.Errorf("get material: %w", err)
	}

	return m, nil
}

// ListMaterials returns materials matching filter ordered by id.
func (s *Service) ListMaterials(ctx context.Context, filter model.MaterialFilter, offset, limit int) ([]model.Material, error) {
	list, err := s.repo.ListMaterials(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	return list, nil
}

// UpdateMaterial merges the set fields of u into the stored material. An empty update returns the
// material unchanged.
func (s *Service) UpdateMaterial(ctx context.Context, id int64, u model.MaterialUpdate) (model.Material, error) {
	m, err := s.repo.GetMaterialByID(ctx, id)
	if err != nil {
		return model.Material{}, fmt.Errorf("get material: %w", err)
	}

	if u.Empty() {
		return m, nil
	}

	u.Apply(&m)

	updated, err := s.repo.UpdateMaterial(ctx, m)
	if err != nil {
		return model.Material{}, fmt.Errorf("update material: %w", err)
	}

	return updated, nil
}

// DeactivateMaterial soft-deletes a material.
func (s *Service) DeactivateMaterial(ctx context.Context, id int64) (model.Material, error) {
	m, err := s.repo.DeactivateMaterial(ctx, id)
	if err != nil {
		return model.Material{}, fmt.Errorf("deactivate material: %w", err)
	}

	return m, nil
}

// DeleteMaterial removes a material permanently.
func (s *Service) DeleteMaterial(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMaterial(ctx, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}

	return nil
}

func (s *Service) announce(ctx context.Context, m model.Material) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.events.MaterialCreated(ctx, m.ID, m.Title); err != nil {
		zlog.Logger.Warn().Err(err).Int64("id", m.ID).Msg("failed to publish material_created event")
	}
}
