package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := LoadWithEnv("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
counting:
  unit: grapheme
provider:
  kind: redis
  cache: true
  cache_ttl: 30s
  default_mode: clipboard
  redis:
    addr: redis:6379
    db: 2
    timeout: 100ms
`)

	cfg, err := LoadWithEnv(path, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "grapheme", cfg.Counting.Unit)
	assert.Equal(t, ProviderRedis, cfg.Provider.Kind)
	assert.True(t, cfg.Provider.Cache)
	assert.Equal(t, 30*time.Second, cfg.Provider.CacheTTL)
	assert.Equal(t, "clipboard", cfg.Provider.DefaultMode)
	assert.Equal(t, "redis:6379", cfg.Provider.Redis.Addr)
	assert.Equal(t, 2, cfg.Provider.Redis.DB)
	assert.Equal(t, 100*time.Millisecond, cfg.Provider.Redis.Timeout)

	// Untouched sections keep their defaults.
	assert.Equal(t, "typist:match:", cfg.Provider.Redis.Prefix)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\nserver:\n  addr: \":9000\"\n")

	cfg, err := LoadWithEnv(path, env(map[string]string{
		"TYPIST_LOG_LEVEL":         "warn",
		"TYPIST_PROVIDER_KIND":     "file",
		"TYPIST_PROVIDER_FILE":     "/etc/typist/matches.yaml",
		"TYPIST_PROVIDER_REDIS_DB": "3",
		"TYPIST_METRICS_ENABLED":   "false",
		"TYPIST_COUNTING_MAX_KEYS": "256",
	}))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, ProviderFile, cfg.Provider.Kind)
	assert.Equal(t, "/etc/typist/matches.yaml", cfg.Provider.File)
	assert.Equal(t, 3, cfg.Provider.Redis.DB)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 256, cfg.Counting.MaxKeys)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"), env(nil))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadWithEnv(writeConfig(t, "provider:\n  kindd: file\n"), env(nil))
		assert.ErrorContains(t, err, "kindd")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := LoadWithEnv("", env(map[string]string{"TYPIST_PROVIDER_CACHE_TTL": "soon"}))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Counting.Unit = "bytes"
	cfg.Counting.MaxKeys = 0
	cfg.Provider.Kind = "file"
	cfg.Provider.DefaultMode = "morse"

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"log.level", "log.format", "counting.unit", "counting.max_keys", "provider.file", "provider.default_mode"} {
		assert.ErrorContains(t, err, field)
	}

	cfg = Default()
	cfg.Provider.Kind = "etcd"
	assert.ErrorContains(t, cfg.Validate(), "unknown kind")
}
