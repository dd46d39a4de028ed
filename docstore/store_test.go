package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"local":  local,
	}
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "a/doc.json", []byte(`{"x":1}`)))

			data, err := store.Get(ctx, "a/doc.json")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"x":1}`), data)

			// Overwrite replaces the previous version.
			require.NoError(t, store.Put(ctx, "a/doc.json", []byte(`{"x":2}`)))
			data, err = store.Get(ctx, "a/doc.json")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"x":2}`), data)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "doc", []byte("data")))
			require.NoError(t, store.Delete(ctx, "doc"))

			_, err := store.Get(ctx, "doc")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing document is not an error.
			assert.NoError(t, store.Delete(ctx, "doc"))
		})
	}
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "a/1", []byte("1")))
			require.NoError(t, store.Put(ctx, "a/2", []byte("2")))
			require.NoError(t, store.Put(ctx, "b/3", []byte("3")))

			all, err := store.List(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"a/1", "a/2", "b/3"}, all)

			sub, err := store.List(ctx, "a/")
			require.NoError(t, err)
			assert.Equal(t, []string{"a/1", "a/2"}, sub)
		})
	}
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	src := []byte("immutable")
	require.NoError(t, store.Put(ctx, "doc", src))
	src[0] = 'X'

	data, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), data)

	// Mutating the returned slice must not poison the store.
	data[0] = 'Y'
	again, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), again)
}
