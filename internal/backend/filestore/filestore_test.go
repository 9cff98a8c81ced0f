package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/config"
	"todos/internal/storage"
	"todos/internal/testutil"
)

func TestStore_Contract(t *testing.T) {
	testutil.RunStoreContract(t, func(t *testing.T) storage.Store {
		s, err := Open(filepath.Join(t.TempDir(), "store.json"), nil)
		require.NoError(t, err)
		return s
	})
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	first, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "todos", `[{"text":"Buy milk","completed":true}]`))

	second, err := Open(path, nil)
	require.NoError(t, err)
	got, err := second.Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"Buy milk","completed":true}]`, got)
}

func TestStore_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "todos", "[]"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "store.json"), nil)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store.json", entries[0].Name())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "todos")
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_EmptyFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "todos")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_CancelledContext(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "store.json"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Set(ctx, "todos", "[]"), context.Canceled)
}

func TestNew_UsesConfigPath(t *testing.T) {
	cfg := config.Default(t.TempDir())
	s, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.StorePath(), s.Path())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}
