package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/config"
	"github.com/mati-tech/microservices1112/internal/model"
)

var ErrInvalidTask = errors.New("invalid dispatch task")

// DispatchQueue carries dispatch tasks between the API and the workers through RabbitMQ.
type DispatchQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	routingKey string
	strategy   retry.Strategy
}

// NewDispatchQueue declares the exchange, the durable task queue and its dead-letter queue.
func NewDispatchQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ, strategy retry.Strategy) (*DispatchQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlq := cfg.Queue + ".dlq"
	if _, err := qm.DeclareQueue(dlq, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": dlq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	return &DispatchQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
		routingKey: cfg.RoutingKey,
		strategy:   strategy,
	}, nil
}

// Submit publishes a task.
func (q *DispatchQueue) Submit(_ context.Context, task model.DispatchTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	if err := q.publisher.PublishWithRetry(body, q.routingKey, "application/json", q.strategy); err != nil {
		return fmt.Errorf("failed to publish task: %w", err)
	}

	return nil
}

// Consume forwards decoded tasks to out until ctx is done. Malformed payloads are logged and dropped.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- model.DispatchTask) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.consumer.ConsumeWithRetry(msgChan, q.strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- model.DispatchTask) {
	for {
		select {
		case <-ctx.Done():
			return
		case body, ok := <-in:
			if !ok {
				return
			}

			task, err := decodeTask(body)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to decode dispatch task")
				continue
			}

			select {
			case out <- task:
			case <-ctx.Done():
				return
			}
		}
	}
}

func decodeTask(body []byte) (model.DispatchTask, error) {
	var task model.DispatchTask
	if err := json.Unmarshal(body, &task); err != nil {
		return model.DispatchTask{}, fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}

	if task.NotificationID <= 0 {
		return model.DispatchTask{}, fmt.Errorf("%w: missing notification_id", ErrInvalidTask)
	}

	return task, nil
}
