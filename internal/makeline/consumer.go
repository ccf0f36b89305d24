package makeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"reddog/internal/domain/order"
	"reddog/internal/sidecar"
)

// OrderReceivedHandler adapts the queue processor to the orders topic
// subscription: every published order lands on its store's make line.
// Redelivered events append again; the queue is allowed to hold duplicates.
func OrderReceivedHandler(processor QueueProcessor, logger *slog.Logger) sidecar.Handler {
	return func(ctx context.Context, body []byte) error {
		var summary order.OrderSummary
		if err := json.Unmarshal(body, &summary); err != nil {
			logger.Error("dropping malformed order event", "error", err)
			return nil
		}

		logger.Info("received order",
			"orderId", summary.OrderID,
			"storeId", summary.StoreID,
			"orderTotal", summary.OrderTotal)

		if err := processor.AddOrder(ctx, summary); err != nil {
			logger.Error("error saving order to state store",
				"orderId", summary.OrderID, "error", err)
			return err
		}

		logger.Info("added order to make line", "orderId", summary.OrderID)
		return nil
	}
}
