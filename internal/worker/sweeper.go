package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks

type requeuer interface {
	RequeueStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// Sweeper periodically re-submits notifications that stayed pending for too long, e.g. after a
// restart dropped the in-memory task buffer.
type Sweeper struct {
	cron       *cron.Cron
	service    requeuer
	schedule   string
	staleAfter time.Duration
	batchSize  int
}

// NewSweeper creates a sweeper running on a cron schedule such as "@every 1m".
func NewSweeper(s requeuer, schedule string, staleAfter time.Duration, batchSize int) *Sweeper {
	return &Sweeper{
		cron:       cron.New(),
		service:    s,
		schedule:   schedule,
		staleAfter: staleAfter,
		batchSize:  batchSize,
	}
}

// Start schedules the sweep and stops it once ctx is done.
func (s *Sweeper) Start(ctx context.Context) error {
	if err := s.cron.AddFunc(s.schedule, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid sweeper schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	zlog.Logger.Info().Str("schedule", s.schedule).Msg("sweeper started")

	go func() {
		<-ctx.Done()
		s.cron.Stop()
		zlog.Logger.Info().Msg("sweeper stopped")
	}()

	return nil
}

// Sweep runs one pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	n, err := s.service.RequeueStale(ctx, s.staleAfter, s.batchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("requeued", n).Msg("failed to requeue stale notifications")
		return
	}

	if n > 0 {
		zlog.Logger.Info().Int("requeued", n).Msg("stale notifications requeued")
	}
}
