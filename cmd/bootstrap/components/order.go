package components

import (
	"reddog/internal/domain/order"
	"reddog/internal/handler"
	"reddog/internal/handler/api"
	"reddog/internal/pkg/clock"
	"reddog/internal/pkg/config"

	"go.uber.org/fx"
)

var OrderModule = fx.Module("order",
	fx.Provide(
		func(cfg config.Config) config.PubSubConfig { return cfg.PubSub },
		func(clk clock.Clock) *order.Factory { return order.NewFactory(clk, order.Catalog()) },
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewOrderRouter),
)
