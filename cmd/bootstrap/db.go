package bootstrap

import (
	"context"

	"reddog/internal/infra/db"
	"reddog/internal/pkg/config"
	"reddog/internal/sidecar"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, secrets sidecar.Secrets) (*pgxpool.Pool, error) {
	password, err := secrets.Get(cfg.DB.PasswordSecret)
	if err != nil {
		return nil, err
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB, password)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
