package typeaccessor

import (
	"sync/atomic"
	"time"
)

// Metrics tracks build activity with lock-free atomic counters.
// All methods are safe for concurrent use; one Metrics instance may be
// shared by many builds.
type Metrics struct {
	modulesFetched  atomic.Uint64
	fetchErrors     atomic.Uint64
	decodeErrors    atomic.Uint64
	modulesWalked   atomic.Uint64
	structsIndexed  atomic.Uint64
	fieldsIndexed   atomic.Uint64
	fetchTimeTotal  atomic.Uint64 // nanoseconds
	buildsStarted   atomic.Uint64
	buildsSucceeded atomic.Uint64
}

// NewMetrics creates a zeroed Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordFetch(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.fetchErrors.Add(1)
		return
	}
	m.modulesFetched.Add(1)
	m.fetchTimeTotal.Add(uint64(elapsed.Nanoseconds()))
}

func (m *Metrics) recordDecodeError() {
	if m == nil {
		return
	}
	m.decodeErrors.Add(1)
}

func (m *Metrics) recordWalk(structs, fields int) {
	if m == nil {
		return
	}
	m.modulesWalked.Add(1)
	m.structsIndexed.Add(uint64(structs))
	m.fieldsIndexed.Add(uint64(fields))
}

func (m *Metrics) recordBuildStart() {
	if m == nil {
		return
	}
	m.buildsStarted.Add(1)
}

func (m *Metrics) recordBuildSuccess() {
	if m == nil {
		return
	}
	m.buildsSucceeded.Add(1)
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	ModulesFetched  uint64
	FetchErrors     uint64
	DecodeErrors    uint64
	ModulesWalked   uint64
	StructsIndexed  uint64
	FieldsIndexed   uint64
	FetchTimeTotal  time.Duration
	BuildsStarted   uint64
	BuildsSucceeded uint64
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ModulesFetched:  m.modulesFetched.Load(),
		FetchErrors:     m.fetchErrors.Load(),
		DecodeErrors:    m.decodeErrors.Load(),
		ModulesWalked:   m.modulesWalked.Load(),
		StructsIndexed:  m.structsIndexed.Load(),
		FieldsIndexed:   m.fieldsIndexed.Load(),
		FetchTimeTotal:  time.Duration(m.fetchTimeTotal.Load()),
		BuildsStarted:   m.buildsStarted.Load(),
		BuildsSucceeded: m.buildsSucceeded.Load(),
	}
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.modulesFetched.Store(0)
	m.fetchErrors.Store(0)
	m.decodeErrors.Store(0)
	m.modulesWalked.Store(0)
	m.structsIndexed.Store(0)
	m.fieldsIndexed.Store(0)
	m.fetchTimeTotal.Store(0)
	m.buildsStarted.Store(0)
	m.buildsSucceeded.Store(0)
}
