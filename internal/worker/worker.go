package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"
)

// Worker drains one store's make line: it fetches the queue over service
// invocation, simulates preparing each item, then completes the order.
type Worker interface {
	// RunOnce performs a single drain pass. It returns immediately without
	// touching anything when a prior pass on this instance is still in
	// flight. The guard is instance-local; multiple worker replicas may
	// drain the same store concurrently, which the make line's optimistic
	// concurrency absorbs.
	RunOnce(ctx context.Context) error
}

type drainWorker struct {
	invoker sidecar.Invoker
	cfg     config.WorkerConfig
	metrics *metrics.Registry
	logger  *slog.Logger
	rand    *rand.Rand

	mu         sync.Mutex
	processing bool
}

func New(invoker sidecar.Invoker, cfg config.WorkerConfig, reg *metrics.Registry, logger *slog.Logger) Worker {
	return &drainWorker{
		invoker: invoker,
		cfg:     cfg,
		metrics: reg,
		logger:  logger,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (w *drainWorker) RunOnce(ctx context.Context) error {
	if !w.tryStartProcessing() {
		w.metrics.WorkerPassesSkipped.Inc()
		w.logger.Debug("worker already processing orders", "storeId", w.cfg.StoreID)
		return nil
	}
	defer w.finishProcessing()

	w.metrics.WorkerPasses.Inc()
	w.logger.Info("worker checking make line orders", "storeId", w.cfg.StoreID)

	orders := w.fetchOrders(ctx)
	w.logger.Info("worker found orders waiting", "storeId", w.cfg.StoreID, "count", len(orders))

	for _, o := range orders {
		if err := w.processOrder(ctx, o); err != nil {
			// A cancelled pass unwinds; anything else was already logged
			// and the order stays queued for the next pass.
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}

	return ctx.Err()
}

func (w *drainWorker) tryStartProcessing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.processing {
		return false
	}
	w.processing = true
	return true
}

func (w *drainWorker) finishProcessing() {
	w.mu.Lock()
	w.processing = false
	w.mu.Unlock()
}

// fetchOrders degrades a failed fetch to an empty pass rather than crashing
// the loop.
func (w *drainWorker) fetchOrders(ctx context.Context) []order.OrderSummary {
	var orders []order.OrderSummary
	err := w.invoker.Get(ctx, w.cfg.MakeLineAppID, "orders/"+w.cfg.StoreID, &orders)
	if err != nil {
		w.logger.Error("failed to retrieve orders from make line", "appId", w.cfg.MakeLineAppID, "error", err)
		return nil
	}
	return orders
}

func (w *drainWorker) processOrder(ctx context.Context, o order.OrderSummary) error {
	w.logger.Info("worker making order",
		"orderId", o.OrderID,
		"customer", fmt.Sprintf("%s %s", o.FirstName, o.LastName))

	for _, item := range o.OrderItems {
		w.logger.Info("preparing item", "quantity", item.Quantity, "productName", item.ProductName)
		if err := w.prepareItem(ctx); err != nil {
			return err
		}
	}

	err := w.invoker.Delete(ctx, w.cfg.MakeLineAppID, fmt.Sprintf("orders/%s/%s", o.StoreID, o.OrderID))
	if err != nil {
		w.logger.Error("failed to complete order", "orderId", o.OrderID, "error", err)
		return err
	}

	w.logger.Info("order completed", "orderId", o.OrderID)
	return nil
}

// prepareItem suspends for a randomized duration within the configured
// bounds, unwinding promptly on cancellation.
func (w *drainWorker) prepareItem(ctx context.Context) error {
	min, max := w.cfg.MinSecondsToCompleteItem, w.cfg.MaxSecondsToCompleteItem
	delay := time.Duration(min+w.rand.Intn(max-min+1)) * time.Second

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
