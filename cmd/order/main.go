package main

import (
	"context"
	"log/slog"
	"os"

	"reddog/cmd/bootstrap"
	"reddog/cmd/bootstrap/components"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Fail safe: never expose debug output on a misconfigured deployment.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           reddog order service
// @version         1.0
// @description     Prices customer orders and publishes them for the make line.

// @BasePath  /
// @schemes http https
func main() {
	app := fx.New(
		bootstrap.CoreModule,
		bootstrap.BusModule,
		bootstrap.InvokerModule,
		components.OrderModule,
		fx.Supply(bootstrap.AppID("order-service")),
		fx.Provide(bootstrap.NewEngine),
		fx.Invoke(
			bootstrap.RegisterService,
			bootstrap.StartServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
}
