package bootstrap

import (
	"context"
	"log/slog"
	"strconv"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"
	"reddog/internal/sidecar"
	"reddog/internal/sidecar/invoker"
	"reddog/internal/sidecar/rabbitmq"

	"go.uber.org/fx"
)

// AppID is the name a service announces itself and its pub/sub queues
// under. Each main supplies its own.
type AppID string

// BusModule connects the service to the message broker and exposes it as
// both publisher and subscriber.
var BusModule = fx.Module("bus",
	fx.Provide(
		NewBus,
		func(b *rabbitmq.Bus) sidecar.Publisher { return b },
		func(b *rabbitmq.Bus) sidecar.Subscriber { return b },
	),
)

func NewBus(lc fx.Lifecycle, cfg config.Config, appID AppID, logger *slog.Logger) (*rabbitmq.Bus, error) {
	bus, err := rabbitmq.New(cfg.AMQP, cfg.PubSub.Name, string(appID), logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			bus.Close()
			return nil
		},
	})
	return bus, nil
}

// InvokerModule resolves peer services through the service catalog and
// exposes an HTTP invoker over them.
var InvokerModule = fx.Module("invoker",
	fx.Provide(
		NewResolver,
		func(r *invoker.ConsulResolver) sidecar.Invoker { return invoker.New(r) },
	),
)

func NewResolver(cfg config.Config) (*invoker.ConsulResolver, error) {
	return invoker.NewConsulResolver(cfg.Consul)
}

// RegisterService announces this instance in the service catalog for the
// app id so that other services can invoke it, and withdraws it on stop.
func RegisterService(lc fx.Lifecycle, cfg config.Config, resolver *invoker.ConsulResolver, appID AppID, logger *slog.Logger) error {
	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil {
		return errs.Wrap(err, "invalid server port")
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("registering service", "appId", string(appID), "port", port)
			return resolver.RegisterService(string(appID), cfg.Server.AdvertiseHost, port)
		},
		OnStop: func(_ context.Context) error {
			return resolver.DeregisterService(string(appID), port)
		},
	})
	return nil
}
