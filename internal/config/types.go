package config

import "time"

// ResolverConfig controls the iterative resolution engine and its UDP
// transport.
type ResolverConfig struct {
	// RootServers are the root nameserver IPv4 addresses tried as the
	// starting point, in order.
	RootServers []string `json:"root_servers"`
	// TimeoutRaw is the per-query receive timeout (e.g. "5s").
	TimeoutRaw string `json:"timeout"`
	// MaxHops bounds the walk depth.
	MaxHops int `json:"max_hops"`
	// RecvSize is the UDP receive buffer size in bytes.
	RecvSize int `json:"recv_size"`
	// Port is the nameserver port, normally 53.
	Port int `json:"port"`

	Timeout time.Duration `json:"-"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level       string            `json:"level"`
	Format      string            `json:"format"` // "text" or "json"
	IncludePID  bool              `json:"include_pid"`
	ExtraFields map[string]string `json:"extra_fields,omitempty"`
}

// HistoryConfig controls the SQLite lookup journal.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// APIConfig controls the management REST API.
//
// APIKey is a shared secret; endpoints must never echo it back.
type APIConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Resolver ResolverConfig `json:"resolver"`
	Logging  LoggingConfig  `json:"logging"`
	History  HistoryConfig  `json:"history"`
	API      APIConfig      `json:"api"`
}
