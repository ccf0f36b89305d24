package api

import (
	"net/http"

	"reddog/internal/handler/httperr"

	"reddog/internal/accounting"

	"github.com/gin-gonic/gin"
)

type AccountingHandler struct {
	repo accounting.Repository
}

func NewAccountingHandler(repo accounting.Repository) *AccountingHandler {
	return &AccountingHandler{repo: repo}
}

// @Summary List store orders
// @Description List every order recorded for a store, completed or not
// @Tags accounting
// @Produce json
// @Param storeId path string true "Store identifier"
// @Success 200 {array} order.OrderSummary
// @Router /orders/{storeId} [get]
func (h *AccountingHandler) GetOrders(c *gin.Context) {
	orders, err := h.repo.OrdersForStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, orders)
}
