package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkoster/rootwalk/internal/api/models"
	"github.com/dkoster/rootwalk/internal/helpers"
)

// Lookups godoc
// @Summary Recent lookups
// @Description Lists journaled lookups, newest first
// @Tags resolve
// @Produce json
// @Param limit query int false "Maximum entries to return (default 50, max 500)"
// @Success 200 {array} history.Entry
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /lookups [get]
func (h *Handler) Lookups(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "history is disabled"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = helpers.ClampInt(n, 1, 500)
		}
	}

	entries, err := h.journal.Recent(limit)
	if err != nil {
		h.logger.Error("journal read failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
