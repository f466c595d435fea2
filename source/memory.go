package source

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/movekit/typeaccessor/pkg/move"
)

// InMemory is a map-backed ModuleSource for fixtures and offline use.
// It counts fetches per module so tests can assert exact fetch behavior.
type InMemory struct {
	mu      sync.RWMutex
	modules map[move.ModuleID][]byte
	fetches map[move.ModuleID]*atomic.Uint64
}

// NewInMemory creates an empty in-memory source.
func NewInMemory() *InMemory {
	return &InMemory{
		modules: make(map[move.ModuleID][]byte),
		fetches: make(map[move.ModuleID]*atomic.Uint64),
	}
}

// Put registers module bytes under the given identifier, replacing any
// previous payload.
func (s *InMemory) Put(id move.ModuleID, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules[id] = data
	if s.fetches[id] == nil {
		s.fetches[id] = new(atomic.Uint64)
	}
}

// FetchModule implements ModuleSource.
func (s *InMemory) FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	data, ok := s.modules[id]
	counter := s.fetches[id]
	s.mu.RUnlock()

	if counter == nil {
		s.mu.Lock()
		if s.fetches[id] == nil {
			s.fetches[id] = new(atomic.Uint64)
		}
		counter = s.fetches[id]
		s.mu.Unlock()
	}
	counter.Add(1)

	if !ok {
		return nil, fmt.Errorf("module %s: %w", id, ErrNotFound)
	}
	return data, nil
}

// Fetches returns how many times the given module has been fetched.
func (s *InMemory) Fetches(id move.ModuleID) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c := s.fetches[id]; c != nil {
		return c.Load()
	}
	return 0
}

// TotalFetches returns the number of fetch calls across all modules.
func (s *InMemory) TotalFetches() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total uint64
	for _, c := range s.fetches {
		total += c.Load()
	}
	return total
}

// Verify interface compliance.
var _ ModuleSource = (*InMemory)(nil)
