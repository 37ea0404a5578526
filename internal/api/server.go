// Package api provides the REST management API for rootwalk: lookup
// execution, lookup history, statistics and health, served by a
// Gin-based HTTP server.
//
// Security note: do not expose the API to untrusted networks without
// setting an API key.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoster/rootwalk/internal/api/handlers"
	"github.com/dkoster/rootwalk/internal/api/middleware"
	"github.com/dkoster/rootwalk/internal/config"
)

// Server is the management REST API server.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the API server around an already-constructed Handler.
func New(cfg *config.Config, logger *slog.Logger, h *handlers.Handler) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	RegisterRoutes(engine, h, cfg)
	MountStatusPage(engine)

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second, // lookups can take several hops
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Engine exposes the gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ListenAndServe binds with SO_REUSEPORT and serves until Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := listenReusePort(ctx, s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
