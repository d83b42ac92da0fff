package material

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/dbpg"

	"github.com/mati-tech/microservices1112/internal/model"
)

var ErrMaterialNotFound = errors.New("material not found")

//go:embed schema.sql
var schema string

const columns = `id, title, description, content_url, file_type, subject, grade_level,
		       created_by, is_active, created_at, updated_at`

// Repository provides methods to interact with materials table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new material repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the materials table and its indexes if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Master.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate materials: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMaterial(s scanner) (model.Material, error) {
	var m model.Material
	err := s.Scan(
		&m.ID, &m.Title, &m.Description, &m.ContentURL, &m.FileType, &m.Subject, &m.GradeLevel,
		&m.CreatedBy, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMaterialNotFound
	}
	return fmt.Errorf("failed to %s material: %w", op, err)
}

// CreateMaterial inserts a new material and returns the stored record.
func (r *Repository) CreateMaterial(ctx context.Context, m model.Material) (model.Material, error) {
	query := `
		INSERT INTO materials (
		    title, description, content_url, file_type, subject, grade_level, created_by, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + columns + `;
    `

	created, err := scanMaterial(r.db.Master.QueryRowContext(
		ctx, query,
		m.Title, m.Description, m.ContentURL, m.FileType, m.Subject, m.GradeLevel, m.CreatedBy, m.IsActive,
	))
	if err != nil {
		return model.Material{}, fmt.Errorf("failed to create material: %w", err)
	}

	return created, nil
}

// GetMaterialByID retrieves a material by its ID.
func (r *Repository) GetMaterialByID(ctx context.Context, id int64) (model.Material, error) {
	query := `
		SELECT ` + columns + `
		FROM materials
		WHERE id = $1;
    `

	m, err := scanMaterial(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Material{}, notFound(err, "get")
	}

	return m, nil
}

// ListMaterials retrieves materials matching filter ordered by id.
func (r *Repository) ListMaterials(ctx context.Context, filter model.MaterialFilter, offset, limit int) ([]model.Material, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Subject != "" {
		args = append(args, filter.Subject)
		conds = append(conds, fmt.Sprintf("subject = $%d", len(args)))
	}
	if filter.GradeLevel != "" {
		args = append(args, filter.GradeLevel)
		conds = append(conds, fmt.Sprintf("grade_level = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + columns + " FROM materials")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	args = append(args, limit, offset)
	fmt.Fprintf(&b, " ORDER BY id ASC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	materials := make([]model.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}

		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate materials: %w", err)
	}

	return materials, nil
}

// UpdateMaterial writes every mutable field of m and stamps updated_at.
func (r *Repository) UpdateMaterial(ctx context.Context, m model.Material) (model.Material, error) {
	query := `
		UPDATE materials
		SET title = $1, description = $2, content_url = $3, file_type = $4,
		    subject = $5, grade_level = $6, is_active = $7, updated_at = now()
		WHERE id = $8
		RETURNING ` + columns + `;
    `

	updated, err := scanMaterial(r.db.Master.QueryRowContext(
		ctx, query,
		m.Title, m.Description, m.ContentURL, m.FileType, m.Subject, m.GradeLevel, m.IsActive, m.ID,
	))
	if err != nil {
		return model.Material{}, notFound(err, "update")
	}

	return updated, nil
}

// DeactivateMaterial sets is_active to false.
func (r *Repository) DeactivateMaterial(ctx context.Context, id int64) (model.Material, error) {
	query := `
		UPDATE materials
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns + `;
    `

	m, err := scanMaterial(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Material{}, notFound(err, "deactivate")
	}

	return m, nil
}

// DeleteMaterial removes a material permanently.
func (r *Repository) DeleteMaterial(ctx context.Context, id int64) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM materials WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return ErrMaterialNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
