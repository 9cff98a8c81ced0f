package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/storage"
)

// RunStoreContract exercises the storage.Store behaviour every backend must
// share. newStore is called once per subtest and must return an empty store.
func RunStoreContract(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "todos")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "todos", `[{"text":"Buy milk","completed":false}]`))

		got, err := s.Get(ctx, "todos")
		require.NoError(t, err)
		assert.Equal(t, `[{"text":"Buy milk","completed":false}]`, got)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "todos", "[1]"))
		require.NoError(t, s.Set(ctx, "todos", "[]"))

		got, err := s.Get(ctx, "todos")
		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "todos", ""))

		got, err := s.Get(ctx, "todos")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "todos", "[]"))
		require.NoError(t, s.Delete(ctx, "todos"))

		_, err := s.Get(ctx, "todos")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, "nope"))
	})

	t.Run("KeysSorted", func(t *testing.T) {
		s := newStore(t)
		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)

		require.NoError(t, s.Set(ctx, "work", "[]"))
		require.NoError(t, s.Set(ctx, "todos", "[]"))
		require.NoError(t, s.Set(ctx, "errands", "[]"))

		keys, err = s.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"errands", "todos", "work"}, keys)
	})
}
