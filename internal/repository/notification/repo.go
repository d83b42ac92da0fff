package notification

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/mati-tech/microservices1112/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrStatusConflict       = errors.New("notification status changed concurrently")
)

//go:embed schema.sql
var schema string

const columns = `id, recipient_email, subject, message, notification_type, status,
		       service_source, event_type, created_at, sent_at, error_message`

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the notifications table and its indexes if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Master.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate notifications: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(s scanner) (model.Notification, error) {
	var n model.Notification
	err := s.Scan(
		&n.ID, &n.RecipientEmail, &n.Subject, &n.Message, &n.Kind, &n.Status,
		&n.ServiceSource, &n.EventType, &n.CreatedAt, &n.SentAt, &n.ErrorMessage,
	)
	return n, err
}

// CreateNotification inserts a new pending notification and returns the stored record.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    recipient_email, subject, message, notification_type, status, service_source, event_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns + `;
    `

	created, err := scanNotification(r.db.Master.QueryRowContext(
		ctx, query,
		n.RecipientEmail, n.Subject, n.Message, string(n.Kind), string(model.StatusPending),
		n.ServiceSource, n.EventType,
	))
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

// GetNotificationByID retrieves a notification by its ID.
func (r *Repository) GetNotificationByID(ctx context.Context, id int64) (model.Notification, error) {
	query := `
		SELECT ` + columns + `
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListNotifications retrieves notifications matching filter, newest first.
func (r *Repository) ListNotifications(ctx context.Context, filter model.Filter, offset, limit int) ([]model.Notification, error) {
	var (
		conds []string
		args  []any
	)

	if filter.RecipientEmail != "" {
		args = append(args, filter.RecipientEmail)
		conds = append(conds, fmt.Sprintf("recipient_email = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ServiceSource != "" {
		args = append(args, filter.ServiceSource)
		conds = append(conds, fmt.Sprintf("service_source = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + columns + " FROM notifications")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	args = append(args, limit, offset)
	fmt.Fprintf(&b, " ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	return r.query(ctx, b.String(), args...)
}

// ListPendingNotifications retrieves up to limit pending notifications, oldest first.
func (r *Repository) ListPendingNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	query := `
		SELECT ` + columns + `
		FROM notifications
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2;
    `

	return r.query(ctx, query, string(model.StatusPending), limit)
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// UpdateStatus moves a notification from status from to status to and returns the updated record.
//
// The update only applies while the stored status still equals from. sent_at is set only when moving
// to sent and error_message is kept only when moving to failed. ErrNotificationNotFound is returned for
// an unknown id and ErrStatusConflict when the stored status differs from from. Transitions outside the
// lifecycle fail with model.ErrInvalidTransition without touching the database.
func (r *Repository) UpdateStatus(
	ctx context.Context, id int64, from, to model.Status, errorMessage *string,
) (model.Notification, error) {
	if !from.CanTransition(to) {
		return model.Notification{}, fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, from, to)
	}

	var sentAt *time.Time
	if to == model.StatusSent {
		now := time.Now().UTC()
		sentAt = &now
	}
	if to != model.StatusFailed {
		errorMessage = nil
	}

	query := `
		UPDATE notifications
		SET status = $1, sent_at = $2, error_message = $3
		WHERE id = $4 AND status = $5
		RETURNING ` + columns + `;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(
		ctx, query, string(to), sentAt, errorMessage, id, string(from),
	))
	if err == nil {
		return n, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return model.Notification{}, fmt.Errorf("failed to update notification status: %w", err)
	}

	var current string
	err = r.db.Master.QueryRowContext(ctx, `SELECT status FROM notifications WHERE id = $1;`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification status: %w", err)
	}

	return model.Notification{}, fmt.Errorf("%w: expected %s, got %s", ErrStatusConflict, from, current)
}
