package typeaccessor

import (
	"sort"

	"github.com/movekit/typeaccessor/pkg/move"
)

// idSet is a deduplicated set of module identifiers kept in ascending order.
// It backs the retrieval frontier: smallest-first extraction gives the build
// its deterministic fetch sequence.
type idSet struct {
	ids []move.ModuleID
}

// insert adds id, keeping order, and reports whether it was new.
func (s *idSet) insert(id move.ModuleID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return !s.ids[i].Less(id) })
	if i < len(s.ids) && s.ids[i] == id {
		return false
	}
	s.ids = append(s.ids, move.ModuleID{})
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id
	return true
}

// popFirst removes and returns the smallest identifier.
// Only valid on a non-empty set.
func (s *idSet) popFirst() move.ModuleID {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

// drain removes and returns all identifiers, ascending.
func (s *idSet) drain() []move.ModuleID {
	ids := s.ids
	s.ids = nil
	return ids
}

func (s *idSet) empty() bool {
	return len(s.ids) == 0
}

// moduleQueue holds structured modules awaiting a walk, keyed by identifier
// and extracted smallest-first.
type moduleQueue struct {
	modules map[move.ModuleID]*move.Module
	order   idSet
}

func newModuleQueue() *moduleQueue {
	return &moduleQueue{modules: make(map[move.ModuleID]*move.Module)}
}

// insert adds a module under id, replacing any previous entry.
func (q *moduleQueue) insert(id move.ModuleID, mod *move.Module) {
	if _, ok := q.modules[id]; !ok {
		q.order.insert(id)
	}
	q.modules[id] = mod
}

// has reports whether id is queued.
func (q *moduleQueue) has(id move.ModuleID) bool {
	_, ok := q.modules[id]
	return ok
}

// popFirst removes and returns the smallest queued module.
// Only valid on a non-empty queue.
func (q *moduleQueue) popFirst() (move.ModuleID, *move.Module) {
	id := q.order.popFirst()
	mod := q.modules[id]
	delete(q.modules, id)
	return id, mod
}

func (q *moduleQueue) empty() bool {
	return len(q.modules) == 0
}
