package ports

import (
	"context"
	"testing"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMatchInfoStoreContract runs a suite of tests to verify that a MatchInfoStore
// implementation adheres to the defined interface contract.
// The store is expected to be empty for match ids 9000-9002.
func RunMatchInfoStoreContract(t *testing.T, store MatchInfoStore) {
	ctx := context.Background()

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, 9000, domain.TextInjectModeClipboard)
		require.NoError(t, err, "Put should not return error")

		mode, err := store.Get(ctx, 9000)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, domain.TextInjectModeClipboard, mode)

		err = store.Put(ctx, 9000, domain.TextInjectModeKeys)
		require.NoError(t, err)
		mode, err = store.Get(ctx, 9000)
		require.NoError(t, err)
		assert.Equal(t, domain.TextInjectModeKeys, mode, "Put should replace the previous entry")
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, 9001)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("ForceMode", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, 9000, domain.TextInjectModeClipboard))

		mode, ok := store.ForceMode(9000)
		assert.True(t, ok)
		assert.Equal(t, domain.TextInjectModeClipboard, mode)

		mode, ok = store.ForceMode(9001)
		assert.False(t, ok, "unknown ids must yield no override")
		assert.Equal(t, domain.TextInjectModeDefault, mode)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, 9002, domain.TextInjectModeKeys))

		err := store.Delete(ctx, 9002)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Get(ctx, 9002)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound, "Get after Delete should return ErrMatchNotFound")

		assert.NoError(t, store.Delete(ctx, 9002), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, 9000, domain.TextInjectModeClipboard))
		require.NoError(t, store.Put(ctx, 9002, domain.TextInjectModeKeys))
		defer func() {
			_ = store.Delete(ctx, 9000)
			_ = store.Delete(ctx, 9002)
		}()

		entries, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.TextInjectModeClipboard, entries[9000])
		assert.Equal(t, domain.TextInjectModeKeys, entries[9002])
		assert.NotContains(t, entries, 9001)
	})
}
