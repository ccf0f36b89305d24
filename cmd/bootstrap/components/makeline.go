package components

import (
	"context"
	"log/slog"

	"reddog/internal/handler"
	"reddog/internal/handler/api"
	"reddog/internal/makeline"
	"reddog/internal/pkg/config"
	"reddog/internal/sidecar"
	"reddog/internal/sidecar/redisstate"

	"go.uber.org/fx"
)

var MakeLineModule = fx.Module("makeline",
	fx.Provide(
		func(cfg config.Config) config.MakeLineConfig { return cfg.MakeLine },
		func(cfg config.Config) config.PubSubConfig { return cfg.PubSub },
		NewMakeLineStateStore,
		makeline.NewQueueProcessor,
		api.NewMakeLineHandler,
	),
	fx.Invoke(
		handler.NewMakeLineRouter,
		SubscribeMakeLine,
	),
)

func NewMakeLineStateStore(lc fx.Lifecycle, cfg config.Config) (sidecar.StateStore, error) {
	store, err := redisstate.New(cfg.Redis, cfg.MakeLine.StateStoreName)
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

// SubscribeMakeLine feeds published orders into the queue processor.
func SubscribeMakeLine(lc fx.Lifecycle, sub sidecar.Subscriber, processor makeline.QueueProcessor, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sub.Subscribe(context.Background(), cfg.PubSub.OrderTopic, makeline.OrderReceivedHandler(processor, logger))
		},
	})
}
