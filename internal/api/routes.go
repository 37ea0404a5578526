package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dkoster/rootwalk/internal/api/docs" // swagger docs
	"github.com/dkoster/rootwalk/internal/api/handlers"
	"github.com/dkoster/rootwalk/internal/api/middleware"
	"github.com/dkoster/rootwalk/internal/config"
)

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)

	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/resolve", h.Resolve)
	api.GET("/lookups", h.Lookups)
	api.GET("/stats", h.Stats)
}
