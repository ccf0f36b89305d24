package components

import (
	"context"
	"log/slog"

	"reddog/internal/handler"
	"reddog/internal/handler/api"
	"reddog/internal/loyalty"
	"reddog/internal/pkg/config"
	"reddog/internal/sidecar"
	"reddog/internal/sidecar/redisstate"

	"go.uber.org/fx"
)

var LoyaltyModule = fx.Module("loyalty",
	fx.Provide(
		func(cfg config.Config) config.LoyaltyConfig { return cfg.Loyalty },
		NewLoyaltyStateStore,
		loyalty.NewLedger,
		api.NewLoyaltyHandler,
	),
	fx.Invoke(
		handler.NewLoyaltyRouter,
		SubscribeLoyalty,
	),
)

func NewLoyaltyStateStore(lc fx.Lifecycle, cfg config.Config) (sidecar.StateStore, error) {
	store, err := redisstate.New(cfg.Redis, cfg.Loyalty.StateStoreName)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

// SubscribeLoyalty credits points for every completed order event.
func SubscribeLoyalty(lc fx.Lifecycle, sub sidecar.Subscriber, ledger loyalty.Ledger, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sub.Subscribe(context.Background(), cfg.PubSub.OrderCompletedTopic, loyalty.OrderCompletedHandler(ledger, logger))
		},
	})
}
