package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/typist"
	"github.com/aretw0/typist/internal/config"
	"github.com/aretw0/typist/internal/logging"
	"github.com/aretw0/typist/pkg/adapters/cache"
	"github.com/aretw0/typist/pkg/adapters/file"
	"github.com/aretw0/typist/pkg/adapters/memory"
	"github.com/aretw0/typist/pkg/adapters/redis"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/middleware"
	"github.com/aretw0/typist/pkg/observability"
	"github.com/aretw0/typist/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// CreateLogger configures the application logger from cfg.
// Logs always go to Stderr so that Stdout stays free for the event stream.
func CreateLogger(cfg *config.Config) *slog.Logger {
	return createLoggerTo(os.Stderr, cfg)
}

func createLoggerTo(w io.Writer, cfg *config.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.NewWithFormat(w, level, cfg.Log.Format)
}

// BuildEngine initializes a typist engine from cfg.
// The returned closer releases provider resources and is never nil.
// A nil reg disables metrics.
func BuildEngine(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*typist.Engine, io.Closer, error) {
	unit, err := middleware.ParseCharUnit(cfg.Counting.Unit)
	if err != nil {
		return nil, nil, err
	}

	provider, closer, err := createProvider(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	opts := []typist.Option{
		typist.WithProvider(provider),
		typist.WithLogger(logger),
		typist.WithCharUnit(unit),
		typist.WithMaxKeyCount(cfg.Counting.MaxKeys),
	}
	if reg != nil && cfg.Metrics.Enabled {
		opts = append(opts, typist.WithMetrics(observability.NewMetrics(reg)))
	}

	return typist.New(opts...), closer, nil
}

// createProvider builds the match-info provider chain described by cfg.
func createProvider(cfg *config.Config, logger *slog.Logger) (ports.MatchInfoProvider, io.Closer, error) {
	var (
		provider ports.MatchInfoProvider
		closer   io.Closer = nopCloser{}
	)

	switch cfg.Provider.Kind {
	case config.ProviderMemory:
		provider = memory.NewStore()

	case config.ProviderFile:
		entries, err := file.LoadEntries(cfg.Provider.File)
		if err != nil {
			return nil, nil, fmt.Errorf("error loading matches: %w", err)
		}
		logger.Info("Match info loaded", "path", cfg.Provider.File, "overrides", len(entries))
		provider = memory.NewFromMap(entries)

	case config.ProviderRedis:
		rc := cfg.Provider.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithTimeout(rc.Timeout),
			redis.WithLogger(logger),
		)
		ctx, cancel := context.WithTimeout(context.Background(), rc.Timeout)
		if err := store.Ping(ctx); err != nil {
			// Lookups degrade to "no override" until the backend comes back.
			logger.Warn("Redis unreachable at startup", "addr", rc.Addr, "error", err)
		}
		cancel()
		provider = store
		closer = store

	default:
		return nil, nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
	}

	defaultMode, err := domain.ParseTextInjectMode(cfg.Provider.DefaultMode)
	if err != nil {
		return nil, nil, err
	}

	mws := []cache.Middleware{cache.NewDefaultModeMiddleware(defaultMode)}
	if cfg.Provider.Cache {
		mws = append(mws, cache.NewMemoMiddleware(cfg.Provider.CacheTTL))
	}

	return cache.Chain(provider, mws...), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
