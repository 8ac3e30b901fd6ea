package component

import "github.com/google/uuid"

// Entity is anything stored in an EntitySet
type Entity interface {
	EntityID() uuid.UUID
}

// EntitySet is an unordered collection iterated in insertion order
// Pickup scans rely on the stable order
type EntitySet[T Entity] struct {
	items []T
	index map[uuid.UUID]struct{}
}

// NewEntitySet creates an empty set
func NewEntitySet[T Entity]() *EntitySet[T] {
	return &EntitySet[T]{index: make(map[uuid.UUID]struct{})}
}

// Add inserts e, returns false if an entity with the same ID is present
func (s *EntitySet[T]) Add(e T) bool {
	id := e.EntityID()
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.items = append(s.items, e)
	return true
}

// Remove deletes the entity with id, returns false when it is not present
func (s *EntitySet[T]) Remove(id uuid.UUID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, e := range s.items {
		if e.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the entity with id
func (s *EntitySet[T]) Get(id uuid.UUID) (T, bool) {
	var zero T
	if _, ok := s.index[id]; !ok {
		return zero, false
	}
	for _, e := range s.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	return zero, false
}

// Contains reports membership
func (s *EntitySet[T]) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the entity count
func (s *EntitySet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the entities in insertion order
// Safe to iterate while removing from the set
func (s *EntitySet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the set
func (s *EntitySet[T]) Clear() {
	s.items = nil
	clear(s.index)
}
