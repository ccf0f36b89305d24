package db

import (
	"context"
	"time"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool for the accounting database. The password comes
// from the secret store, never from plain configuration.
func Connect(ctx context.Context, cfg config.DBConfig, password string) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN(password))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	return pool, pool.Close, nil
}
