package api

import (
	"net/http"

	"reddog/internal/handler/httperr"

	"reddog/internal/worker"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	worker worker.Worker
}

func NewWorkerHandler(w worker.Worker) *WorkerHandler {
	return &WorkerHandler{worker: w}
}

// @Summary Trigger drain pass
// @Description Run one make line drain pass immediately instead of waiting for the next tick
// @Tags worker
// @Produce json
// @Success 202 {object} map[string]string
// @Router /orders [post]
func (h *WorkerHandler) TriggerPass(c *gin.Context) {
	if err := h.worker.RunOnce(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "pass completed"})
}
