package store

import (
	"testing"

	"github.com/google/uuid"
)

type entry struct {
	id   uuid.UUID
	name string
}

func (e entry) Identity() uuid.UUID { return e.id }

func TestIdentifiedListPreservesInsertionOrder(t *testing.T) {
	a := entry{id: uuid.New(), name: "a"}
	b := entry{id: uuid.New(), name: "b"}
	c := entry{id: uuid.New(), name: "c"}

	l := NewIdentifiedList(a, b, c)
	got := l.Values()
	if len(got) != 3 {
		t.Fatalf("Len=%d, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].name != want {
			t.Fatalf("Values()[%d]=%q, want %q", i, got[i].name, want)
		}
	}
}

func TestIdentifiedListUpsertKeepsPosition(t *testing.T) {
	a := entry{id: uuid.New(), name: "a"}
	b := entry{id: uuid.New(), name: "b"}
	l := NewIdentifiedList(a, b)

	l = l.Upsert(entry{id: a.id, name: "a2"})
	got := l.Values()
	if got[0].name != "a2" || got[1].name != "b" {
		t.Fatalf("after upsert got %q,%q; want a2,b", got[0].name, got[1].name)
	}

	d := entry{id: uuid.New(), name: "d"}
	l = l.Upsert(d)
	if l.Len() != 3 || l.Values()[2].name != "d" {
		t.Fatalf("new id should append at the end")
	}
}

func TestIdentifiedListRemove(t *testing.T) {
	a := entry{id: uuid.New(), name: "a"}
	b := entry{id: uuid.New(), name: "b"}
	l := NewIdentifiedList(a, b)

	l2 := l.Remove(a.id)
	if l2.Len() != 1 {
		t.Fatalf("Len=%d after remove, want 1", l2.Len())
	}
	if _, ok := l2.Get(a.id); ok {
		t.Fatalf("removed id still present")
	}
	// original list is untouched
	if l.Len() != 2 {
		t.Fatalf("source list mutated by Remove")
	}

	if got := l2.Remove(uuid.New()); got.Len() != 1 {
		t.Fatalf("removing unknown id must be a no-op")
	}
}
