package bootstrap

import (
	"reddog/internal/pkg/clock"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"
	"reddog/internal/sidecar/localsecrets"

	"go.uber.org/fx"
)

// CoreModule carries the dependencies every service shares: config, the
// slog logger, the prometheus registry, wall clock and the secret store.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(
		metrics.NewRegistry,
		clock.NewRealClock,
		fx.Annotate(
			localsecrets.New,
			fx.As(new(sidecar.Secrets)),
		),
	),
)
