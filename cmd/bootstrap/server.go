package bootstrap

import (
	"context"
	"log/slog"

	"reddog/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func NewEngine() *gin.Engine {
	return gin.New()
}

// StartServer runs the gin engine for the process lifetime.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}
