package source

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/movekit/typeaccessor/cache"
	"github.com/movekit/typeaccessor/pkg/move"
)

// Cached wraps a ModuleSource with an LRU byte cache and collapses
// concurrent fetches of the same identifier into a single inner call, so a
// source shared between builds never issues duplicate in-flight requests
// for one module.
type Cached struct {
	inner ModuleSource
	cache *cache.Cache[move.ModuleID, []byte]
	group singleflight.Group
}

// NewCached wraps inner with a cache holding at most capacity payloads.
// A non-positive capacity selects cache.DefaultCapacity.
func NewCached(inner ModuleSource, capacity int) *Cached {
	return &Cached{
		inner: inner,
		cache: cache.New[move.ModuleID, []byte](capacity),
	}
}

// FetchModule implements ModuleSource.
func (s *Cached) FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error) {
	if data, ok := s.cache.Get(id); ok {
		return data, nil
	}

	v, err, _ := s.group.Do(id.String(), func() (any, error) {
		// Re-check: a concurrent fetch may have populated the cache
		// between the miss above and entering the flight group.
		if data, ok := s.cache.Get(id); ok {
			return data, nil
		}
		data, err := s.inner.FetchModule(ctx, id)
		if err != nil {
			return nil, err
		}
		s.cache.Add(id, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Stats returns the cache counters.
func (s *Cached) Stats() cache.Stats {
	return s.cache.Stats()
}

// Purge drops all cached payloads.
func (s *Cached) Purge() {
	s.cache.Purge()
}

// Verify interface compliance.
var _ ModuleSource = (*Cached)(nil)
