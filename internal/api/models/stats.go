package models

import "time"

// LookupStatsResponse reports resolver outcome counters.
type LookupStatsResponse struct {
	Total          uint64  `json:"total"`
	Answered       uint64  `json:"answered"`
	NoGlue         uint64  `json:"no_glue"`
	DepthExceeded  uint64  `json:"depth_exceeded"`
	ProtocolErrors uint64  `json:"protocol_errors"`
	TransportFails uint64  `json:"transport_failures"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
}

// StatsResponse reports process and resolver statistics.
type StatsResponse struct {
	Uptime        string              `json:"uptime"`
	UptimeSeconds int64               `json:"uptime_seconds"`
	StartTime     time.Time           `json:"start_time"`
	GoRoutines    int                 `json:"goroutines"`
	NumCPU        int                 `json:"num_cpu"`
	MemoryAllocMB float64             `json:"memory_alloc_mb"`
	ProcessRSSMB  float64             `json:"process_rss_mb"`
	ProcessCPUPct float64             `json:"process_cpu_pct"`
	Lookups       LookupStatsResponse `json:"lookups"`
}
