package makeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"

	"github.com/google/uuid"
)

var (
	// ErrPublishFailed marks a completion that aborted before touching the
	// queue because the completed event could not be published. The order
	// stays queued so a retry re-attempts both publish and removal.
	ErrPublishFailed = errs.New("failed to publish order completed event")

	// ErrConflictRetriesExhausted is only reachable when MaxWriteAttempts
	// is configured; the reference behavior retries without bound.
	ErrConflictRetriesExhausted = errs.New("state write conflict retries exhausted")
)

const conflictMetricLabel = "makeline"

// QueueProcessor owns the per-store order queue. Every queue lives in the
// state store as a single versioned record keyed by store id, and every
// mutation is a read-modify-write guarded by the record's etag.
type QueueProcessor interface {
	AddOrder(ctx context.Context, summary order.OrderSummary) error
	GetOrders(ctx context.Context, storeID string) ([]order.OrderSummary, error)
	CompleteOrder(ctx context.Context, storeID string, orderID uuid.UUID, completedAt time.Time) (bool, error)
}

type queueProcessor struct {
	store       sidecar.StateStore
	publisher   sidecar.Publisher
	topic       string
	maxAttempts int
	metrics     *metrics.Registry
	logger      *slog.Logger
}

func NewQueueProcessor(
	store sidecar.StateStore,
	publisher sidecar.Publisher,
	cfg config.MakeLineConfig,
	pubsub config.PubSubConfig,
	reg *metrics.Registry,
	logger *slog.Logger,
) QueueProcessor {
	return &queueProcessor{
		store:       store,
		publisher:   publisher,
		topic:       pubsub.OrderCompletedTopic,
		maxAttempts: cfg.MaxWriteAttempts,
		metrics:     reg,
		logger:      logger,
	}
}

// AddOrder appends the order to its store's queue. A conflicting write
// restarts the whole read-append-write cycle; partial state is never
// merged. Callers may deliver the same order more than once (at-least-once
// pub/sub) and the queue will then hold duplicates; that is accepted.
func (p *queueProcessor) AddOrder(ctx context.Context, summary order.OrderSummary) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		orders, etag, err := p.readQueue(ctx, summary.StoreID)
		if err != nil {
			return err
		}

		orders = append(orders, summary)

		saved, err := p.writeQueue(ctx, summary.StoreID, orders, etag)
		if err != nil {
			return err
		}
		if saved {
			p.metrics.OrdersQueued.Inc()
			return nil
		}

		p.metrics.WriteConflicts.WithLabelValues(conflictMetricLabel).Inc()
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return ErrConflictRetriesExhausted
		}
	}
}

// GetOrders returns the store's queue sorted oldest first. A store with no
// queue record yet reads as empty.
func (p *queueProcessor) GetOrders(ctx context.Context, storeID string) ([]order.OrderSummary, error) {
	orders, _, err := p.readQueue(ctx, storeID)
	if err != nil {
		return nil, err
	}

	order.SortByOrderDate(orders)
	return orders, nil
}

// CompleteOrder stamps the completion date, publishes the completed event,
// and only then removes the order from the queue. The publish happening
// before the removal commit means a crash or conflict between the two can
// duplicate the event, never lose it. Returns (false, nil) when the order
// is not in the queue.
func (p *queueProcessor) CompleteOrder(ctx context.Context, storeID string, orderID uuid.UUID, completedAt time.Time) (bool, error) {
	orders, etag, err := p.readQueue(ctx, storeID)
	if err != nil {
		return false, err
	}

	completed, found := stampCompletion(orders, orderID, completedAt)
	if !found {
		return false, nil
	}

	if err := p.publisher.Publish(ctx, p.topic, completed); err != nil {
		p.metrics.PublishFailures.Inc()
		return false, errs.Mark(err, ErrPublishFailed)
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		saved, err := p.writeQueue(ctx, storeID, removeOrder(orders, orderID), etag)
		if err != nil {
			return false, err
		}
		if saved {
			p.metrics.OrdersCompleted.Inc()
			return true, nil
		}

		p.metrics.WriteConflicts.WithLabelValues(conflictMetricLabel).Inc()
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return false, ErrConflictRetriesExhausted
		}

		orders, etag, err = p.readQueue(ctx, storeID)
		if err != nil {
			return false, err
		}
		// Re-stamp after the re-read; the event already carries the
		// original completion time, so removal stays idempotent.
		stampCompletion(orders, orderID, completedAt)
	}
}

func (p *queueProcessor) readQueue(ctx context.Context, storeID string) ([]order.OrderSummary, string, error) {
	value, etag, err := p.store.Get(ctx, storeID)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to read order queue for store "+storeID)
	}
	if value == nil {
		return nil, etag, nil
	}

	var orders []order.OrderSummary
	if err := json.Unmarshal(value, &orders); err != nil {
		return nil, "", errs.Wrap(err, "failed to decode order queue for store "+storeID)
	}
	return orders, etag, nil
}

func (p *queueProcessor) writeQueue(ctx context.Context, storeID string, orders []order.OrderSummary, etag string) (bool, error) {
	value, err := json.Marshal(orders)
	if err != nil {
		return false, errs.Wrap(err, "failed to encode order queue for store "+storeID)
	}

	saved, err := p.store.TrySet(ctx, storeID, value, etag)
	if err != nil {
		return false, errs.Wrap(err, "failed to write order queue for store "+storeID)
	}
	return saved, nil
}

// stampCompletion sets the completion date on the first matching order and
// returns a copy of it.
func stampCompletion(orders []order.OrderSummary, orderID uuid.UUID, completedAt time.Time) (order.OrderSummary, bool) {
	for i := range orders {
		if orders[i].OrderID == orderID {
			orders[i].OrderCompletedDate = &completedAt
			return orders[i], true
		}
	}
	return order.OrderSummary{}, false
}

func removeOrder(orders []order.OrderSummary, orderID uuid.UUID) []order.OrderSummary {
	remaining := make([]order.OrderSummary, 0, len(orders))
	for _, o := range orders {
		if o.OrderID != orderID {
			remaining = append(remaining, o)
		}
	}
	return remaining
}
