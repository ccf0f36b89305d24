package api

import (
	"errors"
	"net/http"

	"reddog/internal/handler/httperr"

	"reddog/internal/domain/order"
	"reddog/internal/makeline"
	"reddog/internal/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MakeLineHandler struct {
	processor makeline.QueueProcessor
	clock     clock.Clock
}

func NewMakeLineHandler(processor makeline.QueueProcessor, clk clock.Clock) *MakeLineHandler {
	return &MakeLineHandler{
		processor: processor,
		clock:     clk,
	}
}

// @Summary Queue order
// @Description Append an already-priced order summary to its store's make line queue
// @Tags makeline
// @Accept json
// @Produce json
// @Param request body order.OrderSummary true "Order summary"
// @Success 201 {object} order.OrderSummary
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *MakeLineHandler) AddOrder(c *gin.Context) {
	var summary order.OrderSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.processor.AddOrder(c.Request.Context(), summary); err != nil {
		if errors.Is(err, makeline.ErrConflictRetriesExhausted) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Order queue is contended, retry later", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// @Summary List queued orders
// @Description List a store's in-flight orders, oldest first
// @Tags makeline
// @Produce json
// @Param storeId path string true "Store identifier"
// @Success 200 {array} order.OrderSummary
// @Router /orders/{storeId} [get]
func (h *MakeLineHandler) GetOrders(c *gin.Context) {
	orders, err := h.processor.GetOrders(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Complete order
// @Description Publish the order's completion event and remove it from the store's queue
// @Tags makeline
// @Param storeId path string true "Store identifier"
// @Param orderId path string true "Order identifier"
// @Success 200
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders/{storeId}/{orderId} [delete]
func (h *MakeLineHandler) CompleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	// A not-found result is deliberately still a 200: a competing worker
	// may have completed the order first.
	_, err = h.processor.CompleteOrder(c.Request.Context(), c.Param("storeId"), orderID, h.clock.Now().UTC())
	if err != nil {
		if errors.Is(err, makeline.ErrPublishFailed) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to publish order completed event", nil)
			return
		}
		if errors.Is(err, makeline.ErrConflictRetriesExhausted) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Order queue is contended, retry later", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusOK)
}
