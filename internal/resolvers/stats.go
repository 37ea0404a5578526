package resolvers

import (
	"errors"
	"sync/atomic"

	"github.com/dkoster/rootwalk/internal/dns"
)

// LookupStats counts lookup outcomes. All methods are safe for
// concurrent use.
type LookupStats struct {
	total          atomic.Uint64
	answered       atomic.Uint64
	noGlue         atomic.Uint64
	depthExceeded  atomic.Uint64
	protocolErrors atomic.Uint64
	transportFails atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// NewLookupStats creates an empty stats collector.
func NewLookupStats() *LookupStats {
	return &LookupStats{}
}

// Record classifies a finished lookup by its error and adds its latency.
func (s *LookupStats) Record(err error, latencyNs int64) {
	s.total.Add(1)
	if latencyNs > 0 {
		s.latencyTotalNs.Add(uint64(latencyNs))
	}
	switch {
	case err == nil:
		s.answered.Add(1)
	case errors.Is(err, ErrNoGlue):
		s.noGlue.Add(1)
	case errors.Is(err, ErrDepthExceeded):
		s.depthExceeded.Add(1)
	case errors.Is(err, dns.ErrProtocol):
		s.protocolErrors.Add(1)
	default:
		s.transportFails.Add(1)
	}
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Total          uint64
	Answered       uint64
	NoGlue         uint64
	DepthExceeded  uint64
	ProtocolErrors uint64
	TransportFails uint64
	AvgLatencyMs   float64
}

// Snapshot returns the current counters.
func (s *LookupStats) Snapshot() StatsSnapshot {
	total := s.total.Load()
	avg := 0.0
	if total > 0 {
		avg = float64(s.latencyTotalNs.Load()) / float64(total) / 1e6
	}
	return StatsSnapshot{
		Total:          total,
		Answered:       s.answered.Load(),
		NoGlue:         s.noGlue.Load(),
		DepthExceeded:  s.depthExceeded.Load(),
		ProtocolErrors: s.protocolErrors.Load(),
		TransportFails: s.transportFails.Load(),
		AvgLatencyMs:   avg,
	}
}
