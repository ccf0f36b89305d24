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
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           reddog virtual worker
// @version         1.0
// @description     Periodically drains the make line, completing queued orders.

// @BasePath  /
// @schemes http https
func main() {
	app := fx.New(
		bootstrap.CoreModule,
		bootstrap.InvokerModule,
		components.WorkerModule,
		fx.Supply(bootstrap.AppID("virtual-worker")),
		fx.Provide(bootstrap.NewEngine),
		fx.Invoke(
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
