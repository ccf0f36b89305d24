package main

import (
	"context"
	"log/slog"
	"os"

	"reddog/cmd/bootstrap"
	"reddog/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// The receipt service has no HTTP surface of its own; it only consumes
// order events and writes receipt documents through the output binding.
func main() {
	app := fx.New(
		bootstrap.CoreModule,
		bootstrap.BusModule,
		components.ReceiptModule,
		fx.Supply(bootstrap.AppID("receipt-generation-service")),
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
