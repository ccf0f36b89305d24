package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "reddog/internal/handler/dto/request"
	"reddog/internal/handler/httperr"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/config"
	"reddog/internal/pkg/metrics"
	"reddog/internal/sidecar"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	factory   *order.Factory
	publisher sidecar.Publisher
	topic     string
	metrics   *metrics.Registry
	logger    *slog.Logger
}

func NewOrderHandler(
	factory *order.Factory,
	publisher sidecar.Publisher,
	pubsub config.PubSubConfig,
	reg *metrics.Registry,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		factory:   factory,
		publisher: publisher,
		topic:     pubsub.OrderTopic,
		metrics:   reg,
		logger:    logger,
	}
}

// @Summary List products
// @Description List the product catalog orders are priced against
// @Tags orders
// @Produce json
// @Success 200 {array} order.Product
// @Router /product [get]
func (h *OrderHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, order.Catalog())
}

// @Summary Place order
// @Description Price a customer order against the catalog and publish it for downstream services
// @Tags orders
// @Accept json
// @Produce json
// @Param request body request.PlaceOrderRequest true "Customer order"
// @Success 201 {object} order.OrderSummary
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /order [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	summary, err := h.factory.BuildSummary(req.ToDomain())
	if err != nil {
		if errors.Is(err, order.ErrNoOrderItems) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order contains no known products", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if err := h.publisher.Publish(c.Request.Context(), h.topic, summary); err != nil {
		h.metrics.PublishFailures.Inc()
		h.logger.Error("failed to publish order",
			"orderId", summary.OrderID, "storeId", summary.StoreID, "error", err)
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to publish order", nil)
		return
	}

	h.metrics.OrdersPublished.Inc()
	h.logger.Info("order published",
		"orderId", summary.OrderID, "storeId", summary.StoreID, "orderTotal", summary.OrderTotal)
	c.JSON(http.StatusCreated, summary)
}
