package redis_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/typist/pkg/adapters/cache"
	"github.com/aretw0/typist/pkg/adapters/redis"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunMatchInfoStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("espresso:"))

	require.NoError(t, store.Put(context.Background(), 7, domain.TextInjectModeClipboard))

	assert.Equal(t, "clipboard", mr.HGet("espresso:force_mode", "7"))
}

func TestRedisStore_SeededByOtherWriters(t *testing.T) {
	mr, client := newClient(t)
	mr.HSet(redis.DefaultPrefix+"force_mode", "3", "paste", "x", "keys", "4", "bogus")

	var logs bytes.Buffer
	store := redis.NewFromClient(client, redis.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	mode, ok := store.ForceMode(3)
	assert.True(t, ok)
	assert.Equal(t, domain.TextInjectModeClipboard, mode)

	_, ok = store.ForceMode(4)
	assert.False(t, ok, "invalid stored values must degrade to no override")
	assert.Contains(t, logs.String(), "lookup failed")

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int]domain.TextInjectMode{3: domain.TextInjectModeClipboard}, entries)
}

func TestRedisStore_UnavailableBackendYieldsNoOverride(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	require.NoError(t, store.Put(context.Background(), 1, domain.TextInjectModeKeys))

	mr.Close()

	mode, ok := store.ForceMode(1)
	assert.False(t, ok)
	assert.Equal(t, domain.TextInjectModeDefault, mode)
}

func TestRedisStore_TransientFailureIsNotMemoised(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	require.NoError(t, store.Put(context.Background(), 1, domain.TextInjectModeClipboard))

	provider := cache.NewMemoMiddleware(0)(store)

	mr.SetError("ERR backend unavailable")
	_, ok, err := store.LookupForceMode(1)
	assert.Error(t, err)
	assert.False(t, ok)

	_, ok = provider.ForceMode(1)
	assert.False(t, ok)

	mr.SetError("")
	mode, ok := provider.ForceMode(1)
	assert.True(t, ok, "the failed lookup must not stick in the cache")
	assert.Equal(t, domain.TextInjectModeClipboard, mode)
}

func TestRedisStore_LookupMissIsNotAnError(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)

	mode, ok, err := store.LookupForceMode(42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.TextInjectModeDefault, mode)
}

func TestRedisStore_PingAndClose(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := redis.New(mr.Addr(), "", 0)
	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Close())
	assert.Error(t, store.Ping(context.Background()), "a closed client cannot be used")
}
