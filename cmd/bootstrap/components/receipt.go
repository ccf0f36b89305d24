package components

import (
	"context"
	"log/slog"

	"reddog/internal/pkg/config"
	"reddog/internal/receipt"
	"reddog/internal/sidecar"
	"reddog/internal/sidecar/localbinding"

	"go.uber.org/fx"
)

var ReceiptModule = fx.Module("receipt",
	fx.Provide(
		NewReceiptBinding,
		receipt.NewGenerator,
	),
	fx.Invoke(
		SubscribeReceipt,
	),
)

func NewReceiptBinding(cfg config.Config) (sidecar.Binding, error) {
	return localbinding.New(cfg.Receipt.Directory)
}

// SubscribeReceipt writes a receipt document for every placed order.
func SubscribeReceipt(lc fx.Lifecycle, sub sidecar.Subscriber, g *receipt.Generator, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sub.Subscribe(context.Background(), cfg.PubSub.OrderTopic, receipt.OrderReceivedHandler(g, logger))
		},
	})
}
