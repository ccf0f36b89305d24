package components

import (
	"context"
	"log/slog"

	"reddog/internal/customers"
	"reddog/internal/pkg/config"

	"go.uber.org/fx"
)

var CustomersModule = fx.Module("customers",
	fx.Provide(
		func(cfg config.Config) config.CustomersConfig { return cfg.Customers },
		customers.NewSimulator,
	),
	fx.Invoke(
		RunSimulator,
	),
)

// RunSimulator places orders until the configured count is reached, then
// shuts the process down. A negative count runs until interrupted.
func RunSimulator(lc fx.Lifecycle, sim *customers.Simulator, shutdowner fx.Shutdowner, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				placed, err := sim.Run(ctx)
				if err != nil && ctx.Err() == nil {
					logger.Error("customer simulation stopped", "error", err, "ordersPlaced", placed)
				} else {
					logger.Info("customer simulation finished", "ordersPlaced", placed)
				}
				if ctx.Err() == nil {
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
