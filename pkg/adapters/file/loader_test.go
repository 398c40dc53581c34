package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/typist/pkg/adapters/file"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "matches.yaml", `
matches:
  - id: 1
    force_mode: clipboard
  - id: 2
    force_mode: keys
  - id: 3
`)

	store, err := file.Load(path)
	require.NoError(t, err)

	mode, ok := store.ForceMode(1)
	assert.True(t, ok)
	assert.Equal(t, domain.TextInjectModeClipboard, mode)

	mode, ok = store.ForceMode(2)
	assert.True(t, ok)
	assert.Equal(t, domain.TextInjectModeKeys, mode)

	_, ok = store.ForceMode(3)
	assert.False(t, ok, "an entry without force_mode is not an override")
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "matches.json", `{"matches":[{"id":10,"force_mode":"paste"}]}`)

	entries, err := file.LoadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]domain.TextInjectMode{10: domain.TextInjectModeClipboard}, entries)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store, err := file.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	_, ok := store.ForceMode(1)
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid mode", func(t *testing.T) {
		path := writeFile(t, "matches.yaml", "matches:\n  - id: 4\n    force_mode: morse\n")
		_, err := file.Load(path)
		assert.ErrorIs(t, err, domain.ErrUnknownInjectMode)
	})

	t.Run("duplicate id", func(t *testing.T) {
		path := writeFile(t, "matches.yaml", "matches:\n  - id: 4\n  - id: 4\n")
		_, err := file.Load(path)
		assert.ErrorContains(t, err, "duplicate match id 4")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "matches.json", `{"matches":`)
		_, err := file.Load(path)
		assert.Error(t, err)
	})
}
