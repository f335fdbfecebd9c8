package store

import "github.com/google/uuid"

// Identifiable is implemented by every element kept in an IdentifiedList.
type Identifiable interface {
	Identity() uuid.UUID
}

// IdentifiedList is an insertion-ordered, id-keyed collection. Iteration
// order is display order; lookup by id is O(1). All mutating operations
// return a new list so machine states stay value types with no aliasing
// between old and new snapshots.
type IdentifiedList[T Identifiable] struct {
	order []uuid.UUID
	byID  map[uuid.UUID]T
}

// NewIdentifiedList builds a list from the given elements, keeping their
// order. A duplicate id overwrites the earlier element in place.
func NewIdentifiedList[T Identifiable](elems ...T) IdentifiedList[T] {
	l := IdentifiedList[T]{
		order: make([]uuid.UUID, 0, len(elems)),
		byID:  make(map[uuid.UUID]T, len(elems)),
	}
	for _, e := range elems {
		id := e.Identity()
		if _, ok := l.byID[id]; !ok {
			l.order = append(l.order, id)
		}
		l.byID[id] = e
	}
	return l
}

func (l IdentifiedList[T]) Len() int {
	return len(l.order)
}

func (l IdentifiedList[T]) Get(id uuid.UUID) (T, bool) {
	v, ok := l.byID[id]
	return v, ok
}

// Values returns the elements in insertion order.
func (l IdentifiedList[T]) Values() []T {
	out := make([]T, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

// IDs returns the element ids in insertion order.
func (l IdentifiedList[T]) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(l.order))
	copy(out, l.order)
	return out
}

// Upsert replaces the element with the same id, keeping its position, or
// appends it at the end if the id is new.
func (l IdentifiedList[T]) Upsert(e T) IdentifiedList[T] {
	next := l.clone()
	id := e.Identity()
	if _, ok := next.byID[id]; !ok {
		next.order = append(next.order, id)
	}
	next.byID[id] = e
	return next
}

// Remove drops the element with the given id. Removing an unknown id
// returns the list unchanged.
func (l IdentifiedList[T]) Remove(id uuid.UUID) IdentifiedList[T] {
	if _, ok := l.byID[id]; !ok {
		return l
	}
	next := l.clone()
	delete(next.byID, id)
	for i, oid := range next.order {
		if oid == id {
			next.order = append(next.order[:i], next.order[i+1:]...)
			break
		}
	}
	return next
}

func (l IdentifiedList[T]) clone() IdentifiedList[T] {
	next := IdentifiedList[T]{
		order: make([]uuid.UUID, len(l.order)),
		byID:  make(map[uuid.UUID]T, len(l.byID)),
	}
	copy(next.order, l.order)
	for id, v := range l.byID {
		next.byID[id] = v
	}
	return next
}
