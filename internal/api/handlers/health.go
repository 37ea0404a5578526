package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkoster/rootwalk/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns liveness and history database connectivity
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.journal != nil {
		if err := h.journal.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "history database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
