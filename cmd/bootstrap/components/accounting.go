package components

import (
	"context"
	"log/slog"

	"reddog/internal/accounting"
	"reddog/internal/handler"
	"reddog/internal/handler/api"
	"reddog/internal/pkg/config"
	"reddog/internal/sidecar"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var AccountingModule = fx.Module("accounting",
	fx.Provide(
		accounting.NewRepository,
		api.NewAccountingHandler,
	),
	fx.Invoke(
		EnsureAccountingSchema,
		handler.NewAccountingRouter,
		SubscribeAccounting,
	),
)

func EnsureAccountingSchema(pool *pgxpool.Pool) error {
	return accounting.EnsureSchema(context.Background(), pool)
}

// SubscribeAccounting records every order on intake and stamps it on
// completion.
func SubscribeAccounting(lc fx.Lifecycle, sub sidecar.Subscriber, repo accounting.Repository, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := sub.Subscribe(context.Background(), cfg.PubSub.OrderTopic, accounting.OrderReceivedHandler(repo, logger)); err != nil {
				return err
			}
			return sub.Subscribe(context.Background(), cfg.PubSub.OrderCompletedTopic, accounting.OrderCompletedHandler(repo, logger))
		},
	})
}
