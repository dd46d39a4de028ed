package docstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store and adds read-through caching of whole
// documents. Concurrent Gets for the same missing name are coalesced into a
// single backend fetch. Put and Delete invalidate the cached entry, so a
// single-writer process always reads its own writes.
type CachingStore struct {
	inner Store
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewCachingStore creates a CachingStore around inner.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Put writes through and caches the new version.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.inner.Put(ctx, name, data); err != nil {
		return err
	}
	copied := make([]byte, len(data))
	copy(copied, data)

	s.mu.Lock()
	s.cache[name] = copied
	s.mu.Unlock()
	return nil
}

// Get returns the cached document or fetches it from the backend.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		copied := make([]byte, len(data))
		copy(copied, data)
		return copied, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		fetched, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = fetched
		s.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	data = v.([]byte)
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Delete removes a document and drops its cache entry.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.inner.Delete(ctx, name); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return nil
}

// List is a pass-through; listings are not cached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
