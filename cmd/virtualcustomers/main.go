package main

import (
	"context"
	"log/slog"
	"os"

	"reddog/cmd/bootstrap"
	"reddog/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Virtual customers is a load generator: it places random orders against
// the order service and exits once the configured count is reached.
func main() {
	app := fx.New(
		bootstrap.CoreModule,
		bootstrap.InvokerModule,
		components.CustomersModule,
		fx.Supply(bootstrap.AppID("virtual-customers")),
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
