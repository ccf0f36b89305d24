package accounting

import (
	"context"
	"encoding/json"
	"log/slog"

	"reddog/internal/domain/order"
	"reddog/internal/sidecar"
)

// OrderReceivedHandler records every published order in the ledger. The
// upsert absorbs redelivered events.
func OrderReceivedHandler(repo Repository, logger *slog.Logger) sidecar.Handler {
	return func(ctx context.Context, body []byte) error {
		var summary order.OrderSummary
		if err := json.Unmarshal(body, &summary); err != nil {
			logger.Error("dropping malformed order event", "error", err)
			return nil
		}

		if err := repo.UpsertOrder(ctx, summary); err != nil {
			logger.Error("failed to record order", "orderId", summary.OrderID, "error", err)
			return err
		}

		logger.Info("recorded order", "orderId", summary.OrderID, "storeId", summary.StoreID)
		return nil
	}
}

// OrderCompletedHandler stamps the completion timestamp. The guard on a
// NULL completion date keeps the first delivery's timestamp under
// redelivery.
func OrderCompletedHandler(repo Repository, logger *slog.Logger) sidecar.Handler {
	return func(ctx context.Context, body []byte) error {
		var summary order.OrderSummary
		if err := json.Unmarshal(body, &summary); err != nil {
			logger.Error("dropping malformed order completed event", "error", err)
			return nil
		}
		if summary.OrderCompletedDate == nil {
			logger.Error("order completed event missing completion date", "orderId", summary.OrderID)
			return nil
		}

		// The completion can outrun the intake event; record the order
		// first so the completion always lands.
		if err := repo.UpsertOrder(ctx, summary); err != nil {
			logger.Error("failed to record completed order", "orderId", summary.OrderID, "error", err)
			return err
		}
		if err := repo.MarkCompleted(ctx, summary.OrderID, *summary.OrderCompletedDate); err != nil {
			logger.Error("failed to mark order completed", "orderId", summary.OrderID, "error", err)
			return err
		}
		return nil
	}
}
