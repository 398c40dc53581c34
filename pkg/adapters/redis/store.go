package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/typist/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "typist:match:"

// Store implements ports.MatchInfoStore using a Redis hash
// (field = match id, value = forced text injection mode).
type Store struct {
	client  *backend.Client
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTimeout bounds each ForceMode lookup. Lookups that time out yield no override.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.timeout = timeout
	}
}

// WithLogger sets the logger used to report degraded lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client:  client,
		prefix:  DefaultPrefix,
		timeout: 50 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(store)
	}
	if store.logger == nil {
		store.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return store
}

func (s *Store) hashKey() string {
	return s.prefix + "force_mode"
}

// ForceMode implements ports.MatchInfoProvider.
// Backend failures are logged and reported as "no override".
func (s *Store) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	mode, ok, _ := s.LookupForceMode(matchID)
	return mode, ok
}

// LookupForceMode implements ports.MatchInfoLookup.
func (s *Store) LookupForceMode(matchID int) (domain.TextInjectMode, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	mode, err := s.Get(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return domain.TextInjectModeDefault, false, nil
		}
		s.logger.Warn("match-info lookup failed, using default inject mode",
			"match_id", matchID,
			"error", err,
		)
		return domain.TextInjectModeDefault, false, err
	}
	return mode, mode.IsOverride(), nil
}

// Put records the forced mode of a match.
func (s *Store) Put(ctx context.Context, matchID int, mode domain.TextInjectMode) error {
	if err := s.client.HSet(ctx, s.hashKey(), strconv.Itoa(matchID), string(mode)).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves the forced mode of a match.
func (s *Store) Get(ctx context.Context, matchID int) (domain.TextInjectMode, error) {
	val, err := s.client.HGet(ctx, s.hashKey(), strconv.Itoa(matchID)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.TextInjectModeDefault, domain.ErrMatchNotFound
		}
		return domain.TextInjectModeDefault, fmt.Errorf("failed to load from redis: %w", err)
	}

	mode, err := domain.ParseTextInjectMode(val)
	if err != nil {
		return domain.TextInjectModeDefault, fmt.Errorf("match %d: %w", matchID, err)
	}
	return mode, nil
}

// Delete removes the entry of a match.
func (s *Store) Delete(ctx context.Context, matchID int) error {
	if err := s.client.HDel(ctx, s.hashKey(), strconv.Itoa(matchID)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// List returns every stored entry. Fields that are not integers are skipped.
func (s *Store) List(ctx context.Context) (map[int]domain.TextInjectMode, error) {
	fields, err := s.client.HGetAll(ctx, s.hashKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list redis entries: %w", err)
	}

	out := make(map[int]domain.TextInjectMode, len(fields))
	for field, val := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			s.logger.Debug("skipping non-numeric match id", "field", field)
			continue
		}
		mode, err := domain.ParseTextInjectMode(val)
		if err != nil {
			s.logger.Warn("skipping invalid inject mode", "match_id", id, "error", err)
			continue
		}
		out[id] = mode
	}
	return out, nil
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
