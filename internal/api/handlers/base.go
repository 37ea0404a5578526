// Package handlers implements the rootwalk REST API endpoints.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dkoster/rootwalk/internal/config"
	"github.com/dkoster/rootwalk/internal/dns"
	"github.com/dkoster/rootwalk/internal/history"
	"github.com/dkoster/rootwalk/internal/resolvers"
)

// Lookuper runs one iterative lookup. Satisfied by *resolvers.Iterative;
// tests substitute a fake.
type Lookuper interface {
	Resolve(ctx context.Context, name, root string) (resolvers.Resolution, error)
}

// Journal is the subset of *history.Store the handlers need.
type Journal interface {
	Record(e history.Entry) error
	Recent(limit int) ([]history.Entry, error)
	Health() error
}

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	resolver  Lookuper
	journal   Journal // nil when history is disabled
	stats     *resolvers.LookupStats
	startTime time.Time
}

// New creates a Handler. journal may be nil.
func New(cfg *config.Config, logger *slog.Logger, resolver Lookuper, journal Journal, stats *resolvers.LookupStats) *Handler {
	if stats == nil {
		stats = resolvers.NewLookupStats()
	}
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		resolver:  resolver,
		journal:   journal,
		stats:     stats,
		startTime: time.Now(),
	}
}

// outcomeLabel maps a lookup error to its journal outcome label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return history.OutcomeAnswered
	case errors.Is(err, resolvers.ErrNoGlue):
		return history.OutcomeNoGlue
	case errors.Is(err, resolvers.ErrDepthExceeded):
		return history.OutcomeDepthExceeded
	case errors.Is(err, dns.ErrProtocol):
		return history.OutcomeProtocolError
	default:
		return history.OutcomeTransportFail
	}
}
