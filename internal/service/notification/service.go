package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/metrics"
	"github.com/mati-tech/microservices1112/internal/model"
	"github.com/mati-tech/microservices1112/internal/repository/notification"
	"github.com/mati-tech/microservices1112/pkg/email"
)

var (
	ErrNotRetryable    = errors.New("only failed notifications may be retried")
	ErrNotPending      = errors.New("notification is not pending")
	ErrUnsupportedKind = errors.New("unsupported notification type")

	ErrDispatchUnavailable = errors.New("dispatch is unavailable, try again later")
)

const (
	testEmailSubject = "Test Email from Notification Service"
	testEmailMessage = "This is a test email to verify the notification service is working correctly."
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (model.Notification, error)
	GetNotificationByID(context.Context, int64) (model.Notification, error)
	ListNotifications(ctx context.Context, filter model.Filter, offset, limit int) ([]model.Notification, error)
	ListPendingNotifications(ctx context.Context, limit int) ([]model.Notification, error)
	UpdateStatus(ctx context.Context, id int64, from, to model.Status, errorMessage *string) (model.Notification, error)
}

type dispatcher interface {
	Submit(ctx context.Context, task model.DispatchTask) error
}

// Notifier delivers a rendered message over one channel.
type Notifier interface {
	Send(ctx context.Context, msg email.Message) error
}

// Cache keeps the latest status of a notification.
type Cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	Get(ctx context.Context, key string) (string, error)
}

// Options tunes delivery.
type Options struct {
	Retry       retry.Strategy // bounds the transport attempts inside one delivery
	SendTimeout time.Duration  // zero means no timeout
}

// Service drives the notification delivery lifecycle.
type Service struct {
	repo      notificationRepository
	dispatch  dispatcher
	notifiers map[model.Kind]Notifier
	cache     Cache
	opts      Options
}

// NewService creates a new Service. cache may be nil, in which case statuses are always read from the
// repository.
func NewService(
	repo notificationRepository,
	dispatch dispatcher,
	notifiers map[model.Kind]Notifier,
	cache Cache,
	opts Options,
) *Service {
	if opts.Retry.Attempts < 1 {
		opts.Retry.Attempts = 1
	}

	return &Service{repo: repo, dispatch: dispatch, notifiers: notifiers, cache: cache, opts: opts}
}

// Send stores a new pending notification and hands it to the dispatcher. The returned record is
// always pending; the outcome is observed later through GetNotification.
func (s *Service) Send(ctx context.Context, n model.Notification) (model.Notification, error) {
	created, err := s.create(ctx, n)
	if err != nil {
		return model.Notification{}, err
	}

	metrics.Created(metrics.ModeDeferred)
	if err := s.submit(ctx, created.ID, metrics.ModeDeferred); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", created.ID).Msg("failed to submit notification, it stays pending")
	}

	return created, nil
}

// SendNow stores a new notification, delivers it inline and returns the final record.
func (s *Service) SendNow(ctx context.Context, n model.Notification) (model.Notification, error) {
	created, err := s.create(ctx, n)
	if err != nil {
		return model.Notification{}, err
	}

	metrics.Created(metrics.ModeImmediate)

	// The client going away must not leave the record pending.
	return s.deliver(context.WithoutCancel(ctx), created)
}

// Retry moves a failed notification back to pending and dispatches it once more.
func (s *Service) Retry(ctx context.Context, id int64) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	if n.Status != model.StatusFailed {
		return n, ErrNotRetryable
	}

	reset, err := s.repo.UpdateStatus(ctx, id, model.StatusFailed, model.StatusPending, nil)
	if err != nil {
		if errors.Is(err, notification.ErrStatusConflict) {
			return model.Notification{}, fmt.Errorf("%w: %v", ErrNotRetryable, err)
		}
		return model.Notification{}, fmt.Errorf("reset notification: %w", err)
	}

	if err := s.submit(ctx, reset.ID, metrics.ModeRetry); err != nil {
		restored, rerr := s.repo.UpdateStatus(context.WithoutCancel(ctx), id, model.StatusPending, model.StatusFailed, n.ErrorMessage)
		if rerr != nil {
			zlog.Logger.Error().Err(rerr).Int64("id", id).Msg("failed to restore failed status, it stays pending")
		} else {
			s.cacheStatus(ctx, restored.ID, restored.Status)
		}
		return model.Notification{}, fmt.Errorf("%w: %v", ErrDispatchUnavailable, err)
	}

	s.cacheStatus(ctx, reset.ID, reset.Status)
	metrics.Created(metrics.ModeRetry)

	return reset, nil
}

// Deliver loads a notification and delivers it. It is the entry point of dispatch workers.
// ErrNotPending is returned for records that were already delivered or are waiting for a retry.
func (s *Service) Deliver(ctx context.Context, id int64) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	if n.Status != model.StatusPending {
		metrics.Delivered(metrics.OutcomeSkipped, 0)
		return n, fmt.Errorf("%w: status is %s", ErrNotPending, n.Status)
	}

	return s.deliver(ctx, n)
}

// GetNotification returns a notification by id.
func (s *Service) GetNotification(ctx context.Context, id int64) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetNotificationStatus returns the status of a notification, served from cache when possible.
func (s *Service) GetNotificationStatus(ctx context.Context, id int64) (model.Status, error) {
	if s.cache != nil {
		// A miss is not transient, so the read is not retried.
		status, err := s.cache.Get(ctx, statusKey(id))
		if err == nil {
			return model.Status(status), nil
		}

		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get notification status from cache")
		}
	}

	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, id, n.Status)

	return n.Status, nil
}

// ListNotifications returns notifications matching filter, newest first.
func (s *Service) ListNotifications(ctx context.Context, filter model.Filter, offset, limit int) ([]model.Notification, error) {
	list, err := s.repo.ListNotifications(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}

// ListPending returns up to limit pending notifications, oldest first.
func (s *Service) ListPending(ctx context.Context, limit int) ([]model.Notification, error) {
	list, err := s.repo.ListPendingNotifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	return list, nil
}

// RequeueStale re-submits pending notifications created before now-olderThan. It returns the number of
// submitted tasks.
func (s *Service) RequeueStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	pending, err := s.ListPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-olderThan)
	submitted := 0
	for _, n := range pending {
		if n.CreatedAt.After(cutoff) {
			break
		}

		if err := s.dispatch.Submit(ctx, model.NewDispatchTask(n.ID)); err != nil {
			return submitted, fmt.Errorf("submit notification %d: %w", n.ID, err)
		}
		submitted++
	}

	return submitted, nil
}

// SendTestEmail sends a fixed probe message to verify the SMTP configuration.
func (s *Service) SendTestEmail(ctx context.Context, to string) error {
	probe := model.Notification{
		RecipientEmail: to,
		Subject:        testEmailSubject,
		Message:        testEmailMessage,
		Kind:           model.KindEmail,
	}

	ctx, cancel := s.sendContext(ctx)
	defer cancel()

	if err := s.send(ctx, probe); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}

	return nil
}

func (s *Service) create(ctx context.Context, n model.Notification) (model.Notification, error) {
	if n.Kind == "" {
		n.Kind = model.KindEmail
	}
	n.Status = model.StatusPending

	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.cacheStatus(ctx, created.ID, created.Status)

	return created, nil
}

func (s *Service) submit(ctx context.Context, id int64, mode string) error {
	task := model.NewDispatchTask(id)

	if err := s.dispatch.Submit(ctx, task); err != nil {
		metrics.SubmitFailed(mode)
		return fmt.Errorf("submit task %s: %w", task.TaskID, err)
	}

	return nil
}

// deliver sends a pending notification and records the outcome. Transport failures end in the failed
// status and are not returned as errors; only storage errors are.
func (s *Service) deliver(ctx context.Context, n model.Notification) (model.Notification, error) {
	sendCtx, cancel := s.sendContext(ctx)
	start := time.Now()
	sendErr := s.send(sendCtx, n)
	took := time.Since(start)
	cancel()

	to, outcome := model.StatusSent, metrics.OutcomeSent
	var reason *string
	if sendErr != nil {
		to, outcome = model.StatusFailed, metrics.OutcomeFailed
		msg := sendErr.Error()
		reason = &msg

		zlog.Logger.Warn().Err(sendErr).Int64("id", n.ID).Msg("failed to send notification")
	}

	// The outcome is recorded even when ctx was cancelled during the send.
	ctx = context.WithoutCancel(ctx)

	updated, err := s.repo.UpdateStatus(ctx, n.ID, model.StatusPending, to, reason)
	if err != nil {
		if errors.Is(err, notification.ErrStatusConflict) {
			metrics.Delivered(metrics.OutcomeConflict, took)
		}
		return model.Notification{}, fmt.Errorf("set status %s: %w", to, err)
	}

	metrics.Delivered(outcome, took)
	s.cacheStatus(ctx, updated.ID, updated.Status)

	zlog.Logger.Info().Int64("id", updated.ID).Str("status", string(updated.Status)).Msg("notification delivered")

	return updated, nil
}

func (s *Service) send(ctx context.Context, n model.Notification) error {
	notifier, ok := s.notifiers[n.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, n.Kind)
	}

	body, err := email.RenderNotification(n.Subject, n.Message)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("id", n.ID).Msg("failed to render html body, falling back to plain text")
		body = ""
	}

	msg := email.Message{To: n.RecipientEmail, Subject: n.Subject, Text: n.Message, HTML: body}

	err = s.attempt(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return notifier.Send(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// attempt runs fn up to Retry.Attempts times, sleeping only between attempts.
func (s *Service) attempt(fn func() error) error {
	if s.opts.Retry.Attempts <= 1 {
		return fn()
	}

	head := s.opts.Retry
	head.Attempts--
	if err := retry.Do(fn, head); err == nil {
		return nil
	}

	return fn()
}

func (s *Service) sendContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.SendTimeout > 0 {
		return context.WithTimeout(ctx, s.opts.SendTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *Service) cacheStatus(ctx context.Context, id int64, status model.Status) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.opts.Retry, statusKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to cache notification status")
	}
}

func statusKey(id int64) string {
	return "notification:" + strconv.FormatInt(id, 10) + ":status"
}
