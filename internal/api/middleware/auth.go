// Package middleware provides HTTP middleware for the rootwalk REST API:
// shared-secret authentication and request logging.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkoster/rootwalk/internal/api/models"
)

// RequireAPIKey enforces a shared-secret key sent as `X-API-Key`.
// An empty expected key disables the check.
func RequireAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" || c.GetHeader("X-API-Key") == expected {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
