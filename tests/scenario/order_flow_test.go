//go:build unit

package scenario_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainloyalty "reddog/internal/domain/loyalty"
	"reddog/internal/domain/order"
	"reddog/internal/loyalty"
	"reddog/internal/makeline"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/metrics"
	"reddog/internal/worker"
	"reddog/tests/common/builder"
	"reddog/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Wires the queue processor, drain worker and loyalty ledger together over
// in-memory backends and walks one order through its whole life:
// submitted, queued, drained, completed, points credited.
func TestOrderFlowThroughAllEngines(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	logger := slog.New(slog.DiscardHandler)
	reg := metrics.NewRegistry()

	queueStore := fake.NewStateStore()
	publisher := fake.NewPublisher()
	processor := makeline.NewQueueProcessor(queueStore, publisher, cfg.MakeLine, cfg.PubSub, reg, logger)

	ledgerStore := fake.NewStateStore()
	ledger := loyalty.NewLedger(ledgerStore, cfg.Loyalty, reg, logger)

	// The fake invoker stands in for the HTTP hop between the worker and
	// the make line service.
	inv := fake.NewInvoker()
	inv.GetFunc = func(ctx context.Context, _, method string) (any, error) {
		storeID := strings.TrimPrefix(method, "orders/")
		return processor.GetOrders(ctx, storeID)
	}
	inv.DeleteFunc = func(ctx context.Context, _, method string) error {
		parts := strings.Split(method, "/")
		require.Len(t, parts, 3)
		orderID, err := uuid.Parse(parts[2])
		require.NoError(t, err)
		_, err = processor.CompleteOrder(ctx, parts[1], orderID, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		return err
	}
	w := worker.New(inv, cfg.Worker, reg, logger)

	summary := builder.NewOrderSummaryBuilder().
		WithStoreID("Redmond").
		WithLoyaltyID("42").
		WithOrderTotal("10.00").
		Build()

	require.NoError(t, processor.AddOrder(ctx, summary))

	queued, err := processor.GetOrders(ctx, "Redmond")
	require.NoError(t, err)
	require.Len(t, queued, 1)
	require.True(t, queued[0].OrderTotal.Equal(summary.OrderTotal))

	require.NoError(t, w.RunOnce(ctx))

	// queue drained
	queued, err = processor.GetOrders(ctx, "Redmond")
	require.NoError(t, err)
	require.Empty(t, queued)

	// exactly one completion event per successful removal commit
	completed := publisher.EventsOn(cfg.PubSub.OrderCompletedTopic)
	require.Len(t, completed, 1)

	var completedOrder order.OrderSummary
	require.NoError(t, completed[0].Decode(&completedOrder))
	require.Equal(t, summary.OrderID, completedOrder.OrderID)
	require.NotNil(t, completedOrder.OrderCompletedDate)

	// the completed event is what loyalty consumes
	result, err := ledger.Update(ctx, completedOrder)
	require.NoError(t, err)

	want := domainloyalty.LoyaltySummary{
		FirstName:    completedOrder.FirstName,
		LastName:     completedOrder.LastName,
		LoyaltyID:    "42",
		PointsEarned: 100,
		PointTotal:   100,
	}
	require.Equal(t, want, result)
}
