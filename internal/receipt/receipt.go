package receipt

import (
	"context"
	"encoding/json"
	"log/slog"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/errs"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"
)

// Generator writes one receipt blob per received order through the output
// binding, named "<orderId>.json".
type Generator struct {
	binding sidecar.Binding
	metrics *metrics.Registry
	logger  *slog.Logger
}

func NewGenerator(binding sidecar.Binding, reg *metrics.Registry, logger *slog.Logger) *Generator {
	return &Generator{binding: binding, metrics: reg, logger: logger}
}

func (g *Generator) Generate(ctx context.Context, summary order.OrderSummary) error {
	blobName := summary.OrderID.String() + ".json"

	err := g.binding.Create(ctx, summary, map[string]string{"blobName": blobName})
	if err != nil {
		return errs.Wrap(err, "failed to write receipt for order "+summary.OrderID.String())
	}

	g.metrics.ReceiptsWritten.Inc()
	g.logger.Info("receipt written to storage",
		"orderId", summary.OrderID, "blobName", blobName)
	return nil
}

// OrderReceivedHandler adapts the generator to a pub/sub subscription on
// the orders topic.
func OrderReceivedHandler(g *Generator, logger *slog.Logger) sidecar.Handler {
	return func(ctx context.Context, body []byte) error {
		var summary order.OrderSummary
		if err := json.Unmarshal(body, &summary); err != nil {
			// Malformed payloads can never succeed; log and drop instead
			// of requeueing forever.
			logger.Error("dropping malformed order event", "error", err)
			return nil
		}
		return g.Generate(ctx, summary)
	}
}
