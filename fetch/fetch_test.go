package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/movekit/typeaccessor/pkg/move"
	"github.com/movekit/typeaccessor/source"
)

func seededSource(t *testing.T, ids ...string) (*source.InMemory, []move.ModuleID) {
	t.Helper()
	s := source.NewInMemory()
	parsed := make([]move.ModuleID, 0, len(ids))
	for _, raw := range ids {
		id := move.MustModuleID(raw)
		s.Put(id, []byte(raw))
		parsed = append(parsed, id)
	}
	return s, parsed
}

func TestBatchPreservesOrder(t *testing.T) {
	src, ids := seededSource(t, "0x1::aaa", "0x1::bbb", "0x2::ccc", "0x3::ddd")

	results, err := Batch(context.Background(), src, ids, 4)
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if len(results) != len(ids) {
		t.Fatalf("result count = %d, want %d", len(results), len(ids))
	}
	for i, r := range results {
		if r.ID != ids[i] {
			t.Errorf("results[%d].ID = %v, want %v", i, r.ID, ids[i])
		}
		if string(r.Data) != ids[i].String() {
			t.Errorf("results[%d].Data = %q, want %q", i, r.Data, ids[i])
		}
	}
}

func TestBatchEmptyInput(t *testing.T) {
	src, _ := seededSource(t)
	results, err := Batch(context.Background(), src, nil, 4)
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestBatchPropagatesFailure(t *testing.T) {
	src, ids := seededSource(t, "0x1::aaa")
	missing := move.MustModuleID("0x9::missing")

	_, err := Batch(context.Background(), src, append(ids, missing), 2)
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBatchRespectsCancellation(t *testing.T) {
	src, ids := seededSource(t, "0x1::aaa", "0x1::bbb")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Batch(ctx, src, ids, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// countingSource tracks the peak number of concurrent fetches.
type countingSource struct {
	inner  source.ModuleSource
	active atomic.Int64
	peak   atomic.Int64
}

func (s *countingSource) FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error) {
	n := s.active.Add(1)
	for {
		old := s.peak.Load()
		if n <= old || s.peak.CompareAndSwap(old, n) {
			break
		}
	}
	defer s.active.Add(-1)
	return s.inner.FetchModule(ctx, id)
}

func TestBatchBoundsConcurrency(t *testing.T) {
	src, ids := seededSource(t,
		"0x1::m1", "0x1::m2", "0x1::m3", "0x1::m4",
		"0x1::m5", "0x1::m6", "0x1::m7", "0x1::m8",
	)
	counting := &countingSource{inner: src}

	if _, err := Batch(context.Background(), counting, ids, 2); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if peak := counting.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}
