package docstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a Store and counts backend Gets.
type countingStore struct {
	Store
	gets atomic.Int64
}

func (c *countingStore) Get(ctx context.Context, name string) ([]byte, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, name)
}

func TestCachingStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, backend.Store.Put(ctx, "doc", []byte("data")))

	store := NewCachingStore(backend)

	for i := 0; i < 5; i++ {
		data, err := store.Get(ctx, "doc")
		require.NoError(t, err)
		assert.Equal(t, []byte("data"), data)
	}
	assert.EqualValues(t, 1, backend.gets.Load(), "repeat reads must hit the cache")
}

func TestCachingStore_ReadsOwnWrites(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: NewMemoryStore()}
	store := NewCachingStore(backend)

	require.NoError(t, store.Put(ctx, "doc", []byte("v1")))
	data, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
	assert.Zero(t, backend.gets.Load(), "Put must warm the cache")

	require.NoError(t, store.Put(ctx, "doc", []byte("v2")))
	data, err = store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestCachingStore_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	store := NewCachingStore(NewMemoryStore())

	require.NoError(t, store.Put(ctx, "doc", []byte("data")))
	require.NoError(t, store.Delete(ctx, "doc"))

	_, err := store.Get(ctx, "doc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachingStore_ConcurrentGets(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, backend.Store.Put(ctx, "doc", []byte("data")))

	store := NewCachingStore(backend)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := store.Get(ctx, "doc")
			assert.NoError(t, err)
			assert.Equal(t, []byte("data"), data)
		}()
	}
	wg.Wait()

	// Singleflight coalesces concurrent misses; sequential timing may still
	// allow a handful of backend reads, but never one per caller.
	assert.LessOrEqual(t, backend.gets.Load(), int64(16))
}
