package api

import (
	"errors"
	"net/http"

	"reddog/internal/handler/httperr"

	"reddog/internal/domain/order"
	"reddog/internal/loyalty"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	ledger loyalty.Ledger
}

func NewLoyaltyHandler(ledger loyalty.Ledger) *LoyaltyHandler {
	return &LoyaltyHandler{ledger: ledger}
}

// @Summary Award loyalty points
// @Description Credit a completed order's points to its customer's running total
// @Tags loyalty
// @Accept json
// @Produce json
// @Param request body order.OrderSummary true "Completed order summary"
// @Success 200 {object} loyalty.LoyaltySummary
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *LoyaltyHandler) AwardPoints(c *gin.Context) {
	var summary order.OrderSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.ledger.Update(c.Request.Context(), summary)
	if err != nil {
		if errors.Is(err, loyalty.ErrConflictRetriesExhausted) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Loyalty account is contended, retry later", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
