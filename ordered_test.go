package typeaccessor

import (
	"testing"

	"github.com/movekit/typeaccessor/pkg/move"
)

func TestIDSetOrderedInsert(t *testing.T) {
	var s idSet

	ids := []string{"0x2::b", "0x1::z", "0x1::a", "0x10::m"}
	for _, raw := range ids {
		if !s.insert(move.MustModuleID(raw)) {
			t.Errorf("insert(%s) = false on first insert", raw)
		}
	}
	if s.insert(move.MustModuleID("0x1::a")) {
		t.Error("duplicate insert reported as new")
	}

	want := []string{"0x1::a", "0x1::z", "0x2::b", "0x10::m"}
	for _, w := range want {
		if s.empty() {
			t.Fatalf("set empty before popping %s", w)
		}
		if got := s.popFirst(); got.String() != w {
			t.Errorf("popFirst() = %s; want %s", got, w)
		}
	}
	if !s.empty() {
		t.Error("set not empty after popping everything")
	}
}

func TestIDSetDrain(t *testing.T) {
	var s idSet
	s.insert(move.MustModuleID("0x2::b"))
	s.insert(move.MustModuleID("0x1::a"))

	drained := s.drain()
	if len(drained) != 2 || drained[0].String() != "0x1::a" || drained[1].String() != "0x2::b" {
		t.Errorf("drain() = %v; want [0x1::a 0x2::b]", drained)
	}
	if !s.empty() {
		t.Error("set not empty after drain")
	}
}

func TestModuleQueueSmallestFirst(t *testing.T) {
	q := newModuleQueue()

	b := move.MustModuleID("0x2::b")
	a := move.MustModuleID("0x1::a")
	q.insert(b, &move.Module{ID: b})
	q.insert(a, &move.Module{ID: a})

	if !q.has(a) || !q.has(b) {
		t.Fatal("queue is missing inserted modules")
	}

	id, mod := q.popFirst()
	if id != a || mod.ID != a {
		t.Errorf("popFirst() = %s; want 0x1::a", id)
	}
	id, _ = q.popFirst()
	if id != b {
		t.Errorf("popFirst() = %s; want 0x2::b", id)
	}
	if !q.empty() {
		t.Error("queue not empty after popping everything")
	}
}

func TestModuleQueueReplace(t *testing.T) {
	q := newModuleQueue()
	id := move.MustModuleID("0x1::a")

	q.insert(id, &move.Module{ID: id})
	replacement := &move.Module{ID: id, Structs: []move.Struct{{Name: "S"}}}
	q.insert(id, replacement)

	popped, mod := q.popFirst()
	if popped != id || len(mod.Structs) != 1 {
		t.Error("replacement insert did not overwrite the queued module")
	}
	if !q.empty() {
		t.Error("replacement insert created a duplicate entry")
	}
}
