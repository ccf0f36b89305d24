//go:build unit

package customers_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"log/slog"

	"reddog/internal/customers"
	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorRun(t *testing.T) {
	catalog := order.Catalog()

	t.Run("places the configured number of orders and stops", func(t *testing.T) {
		var mu sync.Mutex
		var placed []order.CustomerOrder

		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, appID, method string) (any, error) {
			assert.Equal(t, "order-service", appID)
			assert.Equal(t, "product", method)
			return catalog, nil
		}
		invoker.PostFunc = func(_ context.Context, _, method string, body []byte) error {
			assert.Equal(t, "order", method)
			var co order.CustomerOrder
			require.NoError(t, json.Unmarshal(body, &co))
			mu.Lock()
			placed = append(placed, co)
			mu.Unlock()
			return nil
		}

		cfg := config.NewTestConfig()
		cfg.Customers.NumOrders = 3
		sim := customers.NewSimulator(invoker, cfg.Customers, slog.New(slog.DiscardHandler))

		created, err := sim.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, created)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, placed, 3)
		for _, co := range placed {
			assert.Equal(t, "Redmond", co.StoreID)
			assert.NotEmpty(t, co.OrderItems)
			assert.LessOrEqual(t, len(co.OrderItems), cfg.Customers.MaxUniqueItemsPerOrder)
			for _, item := range co.OrderItems {
				assert.GreaterOrEqual(t, item.Quantity, 1)
				assert.LessOrEqual(t, item.Quantity, cfg.Customers.MaxItemQuantity)
			}
		}
	})

	t.Run("cancellation stops the product retry loop", func(t *testing.T) {
		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			return []order.Product{}, nil // empty catalog keeps it retrying
		}

		cfg := config.NewTestConfig()
		sim := customers.NewSimulator(invoker, cfg.Customers, slog.New(slog.DiscardHandler))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := sim.Run(ctx)
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not unwind after cancellation")
		}
	})

	t.Run("submit failures do not abort the run", func(t *testing.T) {
		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			return catalog, nil
		}
		invoker.PostFunc = func(_ context.Context, _, _ string, _ []byte) error {
			return fake.ErrPublishUnavailable
		}

		cfg := config.NewTestConfig()
		cfg.Customers.NumOrders = 2
		sim := customers.NewSimulator(invoker, cfg.Customers, slog.New(slog.DiscardHandler))

		created, err := sim.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, created, "failed submissions still count as attempts")
	})
}
