package loyalty

import (
	"context"
	"encoding/json"
	"log/slog"

	"reddog/internal/domain/order"
	"reddog/internal/sidecar"
)

// OrderCompletedHandler adapts the ledger to the ordercompleted topic
// subscription. Redelivered completions accrue points again; dedup is
// deliberately absent.
func OrderCompletedHandler(ledger Ledger, logger *slog.Logger) sidecar.Handler {
	return func(ctx context.Context, body []byte) error {
		var summary order.OrderSummary
		if err := json.Unmarshal(body, &summary); err != nil {
			logger.Error("dropping malformed order completed event", "error", err)
			return nil
		}

		if _, err := ledger.Update(ctx, summary); err != nil {
			logger.Error("error updating loyalty points",
				"loyaltyId", summary.LoyaltyID, "error", err)
			return err
		}
		return nil
	}
}
