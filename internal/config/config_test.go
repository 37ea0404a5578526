package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoster/rootwalk/internal/config"
	"github.com/dkoster/rootwalk/internal/resolvers"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultRootServers, cfg.Resolver.RootServers)
	assert.Equal(t, 5*time.Second, cfg.Resolver.Timeout)
	assert.Equal(t, resolvers.DefaultMaxHops, cfg.Resolver.MaxHops)
	assert.Equal(t, resolvers.DefaultRecvSize, cfg.Resolver.RecvSize)
	assert.Equal(t, resolvers.DefaultPort, cfg.Resolver.Port)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "rootwalk.db", cfg.History.Path)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, 8053, cfg.API.Port)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"resolver": {"root_servers": ["192.0.2.1"], "timeout": "750ms", "max_hops": 5},
		"logging": {"level": "debug", "format": "json"},
		"history": {"enabled": true, "path": "/tmp/j.db"},
		"api": {"host": "0.0.0.0", "port": 9000, "api_key": "secret"}
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"192.0.2.1"}, cfg.Resolver.RootServers)
	assert.Equal(t, 750*time.Millisecond, cfg.Resolver.Timeout)
	assert.Equal(t, 5, cfg.Resolver.MaxHops)
	assert.Equal(t, "DEBUG", cfg.Logging.Level, "level is upper-cased")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "secret", cfg.API.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := config.Load(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidate_BadTimeout(t *testing.T) {
	for _, raw := range []string{"nope", "-1s", "0s"} {
		cfg := config.Config{}
		cfg.Resolver.TimeoutRaw = raw
		assert.Error(t, cfg.Validate(), "timeout %q", raw)
	}
}

func TestValidate_BadPorts(t *testing.T) {
	cfg := config.Config{}
	cfg.Resolver.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = config.Config{}
	cfg.API.Port = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeMaxHopsDefaulted(t *testing.T) {
	cfg := config.Config{}
	cfg.Resolver.MaxHops = -3
	require.NoError(t, cfg.Validate())
	assert.Equal(t, resolvers.DefaultMaxHops, cfg.Resolver.MaxHops)
}

// =============================================================================
// Config Path Resolution Tests
// =============================================================================

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/etc/rootwalk.json")
	assert.Equal(t, "/explicit.json", config.ResolveConfigPath("/explicit.json"), "flag wins over environment")
	assert.Equal(t, "/etc/rootwalk.json", config.ResolveConfigPath(""))

	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, "", config.ResolveConfigPath(""))
}
