package components

import (
	"context"
	"log/slog"
	"time"

	"reddog/internal/handler"
	"reddog/internal/handler/api"
	"reddog/internal/pkg/config"
	"reddog/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
		worker.New,
		api.NewWorkerHandler,
	),
	fx.Invoke(
		handler.NewWorkerRouter,
		RunWorkerLoop,
	),
)

// RunWorkerLoop runs a drain pass on every tick until shutdown. Passes
// that overlap a still-running one are skipped by the worker itself.
func RunWorkerLoop(lc fx.Lifecycle, w worker.Worker, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Worker.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
							logger.Error("drain pass failed", "error", err)
						}
					}
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
