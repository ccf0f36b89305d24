package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reddog/internal/handler/api"
	"reddog/internal/handler/middleware"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewOrderRouter(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, orderHandler *api.OrderHandler) {
	setupCommon(engine, cfg, reg)
	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/product", Handler: orderHandler.GetProducts},
		{Method: http.MethodPost, Path: "/order", Handler: orderHandler.PlaceOrder},
	})
}

func NewMakeLineRouter(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, makeLineHandler *api.MakeLineHandler) {
	setupCommon(engine, cfg, reg)
	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/orders", Handler: makeLineHandler.AddOrder},
		{Method: http.MethodGet, Path: "/orders/:storeId", Handler: makeLineHandler.GetOrders},
		{Method: http.MethodDelete, Path: "/orders/:storeId/:orderId", Handler: makeLineHandler.CompleteOrder},
	})
}

func NewLoyaltyRouter(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, loyaltyHandler *api.LoyaltyHandler) {
	setupCommon(engine, cfg, reg)
	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/orders", Handler: loyaltyHandler.AwardPoints},
	})
}

func NewWorkerRouter(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, workerHandler *api.WorkerHandler) {
	setupCommon(engine, cfg, reg)
	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/orders", Handler: workerHandler.TriggerPass},
	})
}

func NewAccountingRouter(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, accountingHandler *api.AccountingHandler) {
	setupCommon(engine, cfg, reg)
	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/orders/:storeId", Handler: accountingHandler.GetOrders},
	})
}

func setupCommon(engine *gin.Engine, cfg config.Config, reg *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(reg.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
