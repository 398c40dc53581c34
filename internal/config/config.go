package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/typist/internal/logging"
	"github.com/aretw0/typist/pkg/adapters/redis"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/middleware"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TYPIST_LOG_LEVEL.
const EnvPrefix = "TYPIST_"

// Provider kinds.
const (
	ProviderMemory = "memory"
	ProviderFile   = "file"
	ProviderRedis  = "redis"
)

// Config is the runtime configuration of the typist binary.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Counting CountingConfig `mapstructure:"counting" yaml:"counting"`
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type CountingConfig struct {
	// Unit is "codepoint" or "grapheme".
	Unit string `mapstructure:"unit" yaml:"unit"`
	// MaxKeys bounds the length of a generated key sequence.
	MaxKeys int `mapstructure:"max_keys" yaml:"max_keys"`
}

// ProviderConfig selects where forced injection modes come from.
type ProviderConfig struct {
	Kind        string        `mapstructure:"kind" yaml:"kind"`
	File        string        `mapstructure:"file" yaml:"file"`
	Redis       RedisConfig   `mapstructure:"redis" yaml:"redis"`
	Cache       bool          `mapstructure:"cache" yaml:"cache"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	DefaultMode string        `mapstructure:"default_mode" yaml:"default_mode"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// envKeys lists the dotted keys that can be overridden from the environment.
var envKeys = []string{
	"log.level",
	"log.format",
	"counting.unit",
	"counting.max_keys",
	"provider.kind",
	"provider.file",
	"provider.redis.addr",
	"provider.redis.password",
	"provider.redis.db",
	"provider.redis.prefix",
	"provider.redis.timeout",
	"provider.cache",
	"provider.cache_ttl",
	"provider.default_mode",
	"server.addr",
	"metrics.enabled",
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Counting: CountingConfig{
			Unit:    string(middleware.CharUnitCodePoint),
			MaxKeys: middleware.DefaultMaxKeyCount,
		},
		Provider: ProviderConfig{
			Kind: ProviderMemory,
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Prefix:  redis.DefaultPrefix,
				Timeout: 50 * time.Millisecond,
			},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads the configuration file at path (if any), applies TYPIST_*
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	for _, key := range envKeys {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := lookup(name); ok {
			if err := setPath(raw, strings.Split(key, "."), val); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setPath stores val under the nested key path, creating intermediate maps.
func setPath(m map[string]any, path []string, val string) error {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key]
		if !ok || next == nil {
			child := map[string]any{}
			m[key] = child
			m = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot override %q: not a section", key)
		}
		m = child
	}
	m[path[len(path)-1]] = val
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	if _, err := middleware.ParseCharUnit(c.Counting.Unit); err != nil {
		errs = append(errs, fmt.Errorf("counting.unit: %w", err))
	}
	if c.Counting.MaxKeys <= 0 {
		errs = append(errs, errors.New("counting.max_keys: must be positive"))
	}

	switch c.Provider.Kind {
	case ProviderMemory:
	case ProviderFile:
		if c.Provider.File == "" {
			errs = append(errs, errors.New("provider.file: required when provider.kind is file"))
		}
	case ProviderRedis:
		if c.Provider.Redis.Addr == "" {
			errs = append(errs, errors.New("provider.redis.addr: required when provider.kind is redis"))
		}
		if c.Provider.Redis.Timeout <= 0 {
			errs = append(errs, errors.New("provider.redis.timeout: must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("provider.kind: unknown kind %q", c.Provider.Kind))
	}

	if c.Provider.CacheTTL < 0 {
		errs = append(errs, errors.New("provider.cache_ttl: must not be negative"))
	}
	if _, err := domain.ParseTextInjectMode(c.Provider.DefaultMode); err != nil {
		errs = append(errs, fmt.Errorf("provider.default_mode: %w", err))
	}

	return errors.Join(errs...)
}
