package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// DefaultQueue is the AMQP queue follow-up jobs travel through.
const DefaultQueue = "reviewloop.followups"

// followUpJob is the wire format on the queue. RequestedAt anchors the
// offsets so a message consumed late still produces the schedule the
// publisher intended.
type followUpJob struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// AMQPScheduler publishes follow-up jobs to a durable queue.
type AMQPScheduler struct {
	ch    *amqp.Channel
	queue string
}

// NewAMQPScheduler opens a channel on conn and declares the queue. An empty
// queue name selects DefaultQueue.
func NewAMQPScheduler(conn *amqp.Connection, queue string) (*AMQPScheduler, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("scheduling: open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("scheduling: declare queue %q: %w", queue, err)
	}
	return &AMQPScheduler{ch: ch, queue: queue}, nil
}

func (s *AMQPScheduler) ScheduleFollowUps(ctx context.Context, customerID uuid.UUID, now time.Time) error {
	body, err := json.Marshal(followUpJob{CustomerID: customerID, RequestedAt: now})
	if err != nil {
		return fmt.Errorf("scheduling: marshal job: %w", err)
	}
	err = s.ch.Publish("", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("scheduling: publish: %w", err)
	}
	return nil
}

// Close releases the channel. The connection belongs to the caller.
func (s *AMQPScheduler) Close() error {
	return s.ch.Close()
}

// Consumer drains the queue and materialises each job through the store. It
// runs in-process next to the HTTP server; there is no separate worker
// binary.
type Consumer struct {
	conn   *amqp.Connection
	queue  string
	store  *store.Store
	logger *slog.Logger
}

// NewConsumer builds a Consumer for the given queue. An empty queue name
// selects DefaultQueue.
func NewConsumer(conn *amqp.Connection, queue string, st *store.Store, logger *slog.Logger) *Consumer {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Consumer{conn: conn, queue: queue, store: st, logger: logger}
}

// Run consumes until ctx is cancelled or the channel closes. Jobs that fail
// to persist are requeued; jobs with unreadable bodies are dropped, since
// redelivery cannot fix a malformed message.
func (c *Consumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("scheduling: open consume channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("scheduling: declare queue %q: %w", c.queue, err)
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("scheduling: consume %q: %w", c.queue, err)
	}

	c.logger.Info("follow-up consumer started", "queue", c.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("scheduling: delivery channel closed")
			}

			var job followUpJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				c.logger.Error("follow-up job unreadable, dropping", "error", err)
				_ = d.Nack(false, false)
				continue
			}

			if _, err := c.store.ScheduleFollowUps(ctx, job.CustomerID, job.RequestedAt); err != nil {
				c.logger.Error("follow-up job failed, requeueing",
					"customer_id", job.CustomerID,
					"error", err,
				)
				_ = d.Nack(false, true)
				continue
			}

			c.logger.Info("follow-ups scheduled from queue", "customer_id", job.CustomerID)
			_ = d.Ack(false)
		}
	}
}
