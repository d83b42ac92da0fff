package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/model"
	"github.com/mati-tech/microservices1112/internal/repository/notification"
	notifsvc "github.com/mati-tech/microservices1112/internal/service/notification"
)

var (
	ErrQueueFull = errors.New("dispatch queue is full")
	ErrStopped   = errors.New("dispatcher is stopped")
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type deliverer interface {
	Deliver(ctx context.Context, id int64) (model.Notification, error)
}

type taskSource interface {
	Consume(ctx context.Context, out chan<- model.DispatchTask) error
}

// Dispatcher runs a pool of workers that deliver notifications. Tasks come either from Submit or,
// when a source is set, from an external queue.
type Dispatcher struct {
	tasks  chan model.DispatchTask
	source taskSource
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher with a task buffer of queueSize. source may be nil.
func NewDispatcher(queueSize int, source taskSource) *Dispatcher {
	if queueSize < 0 {
		queueSize = 0
	}

	return &Dispatcher{
		tasks:  make(chan model.DispatchTask, queueSize),
		source: source,
		done:   make(chan struct{}),
	}
}

// Submit enqueues a task without blocking. It fails when the buffer is full or the pool is stopped.
func (d *Dispatcher) Submit(ctx context.Context, task model.DispatchTask) error {
	select {
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case d.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run starts workerCount workers and blocks until ctx is cancelled and every worker has finished its
// current task.
func (d *Dispatcher) Run(ctx context.Context, h deliverer, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	if d.source != nil {
		go func() {
			if err := d.source.Consume(ctx, d.tasks); err != nil && ctx.Err() == nil {
				zlog.Logger.Error().Err(err).Msg("failed to consume dispatch tasks")
			}
		}()
	}

	for i := 0; i < workerCount; i++ {
		d.wg.Add(1)

		go func(id int) {
			defer d.wg.Done()
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case task := <-d.tasks:
					handle(ctx, h, task)
				}
			}
		}(i)
	}

	<-ctx.Done()
	d.once.Do(func() { close(d.done) })
	d.wg.Wait()

	zlog.Logger.Print("dispatcher stopped")
}

func handle(ctx context.Context, h deliverer, task model.DispatchTask) {
	n, err := h.Deliver(ctx, task.NotificationID)

	log := zlog.Logger.With().
		Int64("id", task.NotificationID).
		Str("task_id", task.TaskID.String()).
		Logger()

	switch {
	case err == nil:
		log.Info().Str("status", string(n.Status)).Msg("task done")
	case errors.Is(err, notifsvc.ErrNotPending):
		log.Info().Err(err).Msg("task skipped")
	case errors.Is(err, notification.ErrStatusConflict):
		log.Warn().Err(err).Msg("task superseded by a newer status")
	case errors.Is(err, notification.ErrNotificationNotFound):
		log.Warn().Err(err).Msg("task refers to an unknown notification")
	default:
		log.Error().Err(err).Msg("failed to deliver notification")
	}
}
