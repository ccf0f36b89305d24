package loyalty

import (
	"context"
	"encoding/json"
	"log/slog"

	domain "reddog/internal/domain/loyalty"
	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"
)

// ErrConflictRetriesExhausted is only reachable when MaxWriteAttempts is
// configured; the reference behavior retries without bound.
var ErrConflictRetriesExhausted = errs.New("state write conflict retries exhausted")

const conflictMetricLabel = "loyalty"

// Ledger accumulates loyalty points per customer. The per-customer summary
// is a single versioned record keyed by loyalty id; every update is a
// read-accumulate-write guarded by the record's etag.
type Ledger interface {
	Update(ctx context.Context, summary order.OrderSummary) (domain.LoyaltySummary, error)
}

type ledger struct {
	store       sidecar.StateStore
	maxAttempts int
	metrics     *metrics.Registry
	logger      *slog.Logger
}

func NewLedger(store sidecar.StateStore, cfg config.LoyaltyConfig, reg *metrics.Registry, logger *slog.Logger) Ledger {
	return &ledger{
		store:       store,
		maxAttempts: cfg.MaxWriteAttempts,
		metrics:     reg,
		logger:      logger,
	}
}

// Update adds round(OrderTotal × 10) points to the customer's running
// total. A previously unseen loyalty id starts from zero. On a write
// conflict the local mutation is discarded and the whole cycle restarts
// from the read. Because completion events are delivered at least once,
// duplicated events over-count points; that matches the source behavior
// and is deliberately not deduplicated here.
func (l *ledger) Update(ctx context.Context, orderSummary order.OrderSummary) (domain.LoyaltySummary, error) {
	pointsEarned := domain.PointsForTotal(orderSummary.OrderTotal)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.LoyaltySummary{}, err
		}

		current, etag, err := l.read(ctx, orderSummary.LoyaltyID)
		if err != nil {
			return domain.LoyaltySummary{}, err
		}

		if current == nil {
			current = &domain.LoyaltySummary{
				FirstName:  orderSummary.FirstName,
				LastName:   orderSummary.LastName,
				LoyaltyID:  orderSummary.LoyaltyID,
				PointTotal: 0,
			}
		}

		current.PointsEarned = pointsEarned
		current.PointTotal += pointsEarned

		saved, err := l.write(ctx, orderSummary.LoyaltyID, *current, etag)
		if err != nil {
			return domain.LoyaltySummary{}, err
		}
		if saved {
			l.metrics.PointsEarned.Add(float64(pointsEarned))
			l.logger.Info("updated loyalty points",
				"loyaltyId", current.LoyaltyID,
				"pointsEarned", current.PointsEarned,
				"pointTotal", current.PointTotal)
			return *current, nil
		}

		l.metrics.WriteConflicts.WithLabelValues(conflictMetricLabel).Inc()
		if l.maxAttempts > 0 && attempt >= l.maxAttempts {
			return domain.LoyaltySummary{}, ErrConflictRetriesExhausted
		}
	}
}

func (l *ledger) read(ctx context.Context, loyaltyID string) (*domain.LoyaltySummary, string, error) {
	value, etag, err := l.store.Get(ctx, loyaltyID)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to read loyalty summary for "+loyaltyID)
	}
	if value == nil {
		return nil, etag, nil
	}

	var summary domain.LoyaltySummary
	if err := json.Unmarshal(value, &summary); err != nil {
		return nil, "", errs.Wrap(err, "failed to decode loyalty summary for "+loyaltyID)
	}
	return &summary, etag, nil
}

func (l *ledger) write(ctx context.Context, loyaltyID string, summary domain.LoyaltySummary, etag string) (bool, error) {
	value, err := json.Marshal(summary)
	if err != nil {
		return false, errs.Wrap(err, "failed to encode loyalty summary for "+loyaltyID)
	}

	saved, err := l.store.TrySet(ctx, loyaltyID, value, etag)
	if err != nil {
		return false, errs.Wrap(err, "failed to write loyalty summary for "+loyaltyID)
	}
	return saved, nil
}
