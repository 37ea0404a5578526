// Package config provides configuration loading and validation for
// rootwalk. Configuration is a single JSON file; Validate() fills in
// defaults so an empty file (or no file at all) yields a working setup.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dkoster/rootwalk/internal/resolvers"
)

// DefaultRootServers are the IPv4 addresses of a.root-servers.net
// through d.root-servers.net. Any caller-supplied root replaces them.
var DefaultRootServers = []string{
	"198.41.0.4",
	"199.9.14.201",
	"192.33.4.12",
	"199.7.91.13",
}

// EnvConfigPath names the environment variable consulted when no
// -config flag is given.
const EnvConfigPath = "ROOTWALK_CONFIG"

// ResolveConfigPath returns flagValue if set, else the environment
// override, else empty (meaning: defaults only).
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the JSON config at path and validates it. An empty path
// returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes the configuration and applies defaults.
func (cfg *Config) Validate() error {
	// Resolver
	if len(cfg.Resolver.RootServers) == 0 {
		cfg.Resolver.RootServers = append([]string(nil), DefaultRootServers...)
	}
	if cfg.Resolver.TimeoutRaw == "" {
		cfg.Resolver.TimeoutRaw = "5s"
	}
	timeout, err := time.ParseDuration(cfg.Resolver.TimeoutRaw)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("resolver.timeout %q is not a positive duration", cfg.Resolver.TimeoutRaw)
	}
	cfg.Resolver.Timeout = timeout
	if cfg.Resolver.MaxHops <= 0 {
		cfg.Resolver.MaxHops = resolvers.DefaultMaxHops
	}
	if cfg.Resolver.RecvSize <= 0 {
		cfg.Resolver.RecvSize = resolvers.DefaultRecvSize
	}
	if cfg.Resolver.Port == 0 {
		cfg.Resolver.Port = resolvers.DefaultPort
	}
	if cfg.Resolver.Port < 0 || cfg.Resolver.Port > 65535 {
		return errors.New("resolver.port must be 1..65535")
	}

	// Logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// History
	if cfg.History.Path == "" {
		cfg.History.Path = "rootwalk.db"
	}

	// API
	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8053
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	return nil
}
