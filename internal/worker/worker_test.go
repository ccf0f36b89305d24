//go:build unit

package worker_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"
	"reddog/internal/pkg/metrics"
	"reddog/internal/worker"
	"reddog/tests/common/builder"
	"reddog/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorker(t *testing.T, invoker *fake.Invoker) worker.Worker {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Worker.MinSecondsToCompleteItem = 1
	cfg.Worker.MaxSecondsToCompleteItem = 1
	return worker.New(invoker, cfg.Worker, metrics.NewRegistry(), slog.New(slog.DiscardHandler))
}

func TestRunOnce(t *testing.T) {
	t.Run("fetches queue and completes each order", func(t *testing.T) {
		first := builder.NewOrderSummaryBuilder().Build()
		second := builder.NewOrderSummaryBuilder().Build()

		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, appID, method string) (any, error) {
			assert.Equal(t, "make-line-service", appID)
			assert.Equal(t, "orders/Redmond", method)
			return []any{first, second}, nil
		}
		invoker.DeleteFunc = func(_ context.Context, _, _ string) error { return nil }

		w := newWorker(t, invoker)
		require.NoError(t, w.RunOnce(context.Background()))

		deletes := invoker.DeleteCalls()
		require.Len(t, deletes, 2)
		assert.Equal(t, fmt.Sprintf("orders/Redmond/%s", first.OrderID), deletes[0])
		assert.Equal(t, fmt.Sprintf("orders/Redmond/%s", second.OrderID), deletes[1])
	})

	t.Run("fetch failure degrades to empty pass", func(t *testing.T) {
		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			return nil, errs.New("make line unreachable")
		}

		w := newWorker(t, invoker)
		require.NoError(t, w.RunOnce(context.Background()), "fetch errors must not crash the loop")
		assert.Empty(t, invoker.DeleteCalls())
	})

	t.Run("completion failure proceeds to next order", func(t *testing.T) {
		first := builder.NewOrderSummaryBuilder().Build()
		second := builder.NewOrderSummaryBuilder().Build()

		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			return []any{first, second}, nil
		}
		invoker.DeleteFunc = func(_ context.Context, _, method string) error {
			if method == fmt.Sprintf("orders/Redmond/%s", first.OrderID) {
				return errs.New("conflict storm")
			}
			return nil
		}

		w := newWorker(t, invoker)
		require.NoError(t, w.RunOnce(context.Background()))
		assert.Len(t, invoker.DeleteCalls(), 2, "second order still attempted")
	})

	t.Run("refuses to run while a pass is in flight", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})

		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			close(started)
			<-release
			return []any{}, nil
		}

		w := newWorker(t, invoker)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.RunOnce(context.Background()))
		}()

		<-started
		// Second pass must return immediately without fetching.
		require.NoError(t, w.RunOnce(context.Background()))
		assert.Len(t, invoker.GetCalls(), 1, "re-entrant pass must not fetch")

		close(release)
		wg.Wait()

		// Guard is released after the pass; the next pass runs.
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) { return []any{}, nil }
		require.NoError(t, w.RunOnce(context.Background()))
		assert.Len(t, invoker.GetCalls(), 2)
	})

	t.Run("cancellation unwinds the item delay promptly", func(t *testing.T) {
		summary := builder.NewOrderSummaryBuilder().Build()

		invoker := fake.NewInvoker()
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) {
			return []any{summary}, nil
		}
		invoker.DeleteFunc = func(_ context.Context, _, _ string) error { return nil }

		w := newWorker(t, invoker)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- w.RunOnce(ctx) }()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("RunOnce did not unwind after cancellation")
		}
		assert.Empty(t, invoker.DeleteCalls(), "cancelled pass must not complete orders")

		// A cancelled pass is not left in "processing" state.
		invoker.GetFunc = func(_ context.Context, _, _ string) (any, error) { return []any{}, nil }
		require.NoError(t, w.RunOnce(context.Background()))
	})
}
