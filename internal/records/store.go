// Package records provides the bounded, ID-keyed record store shared by
// plans, equipment and members.
//
// A Store keeps records in insertion order. Removing a record shifts every
// later record down one position, so positions change on delete while IDs
// never do. The store does no locking; it is owned by a single session.
package records

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("record not found")

	// ErrCapacityExceeded is returned when appending to a full store.
	ErrCapacityExceeded = errors.New("store capacity exceeded")
)

// Record is implemented by every entity kind held in a Store.
type Record interface {
	RecordID() int
}

// Store is an ordered sequence of records with a fixed capacity.
type Store[T Record] struct {
	items    []T
	capacity int
}

// New creates an empty store that holds at most capacity records.
func New[T Record](capacity int) *Store[T] {
	return &Store[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of records in the store.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Cap returns the fixed capacity of the store.
func (s *Store[T]) Cap() int {
	return s.capacity
}

// Full reports whether another Append would be refused.
func (s *Store[T]) Full() bool {
	return len(s.items) >= s.capacity
}

// NextID returns 1 for an empty store, otherwise the highest ID plus one.
// Deleting the highest-ID record makes its ID available again.
func (s *Store[T]) NextID() int {
	if len(s.items) == 0 {
		return 1
	}
	maxID := s.items[0].RecordID()
	for _, item := range s.items[1:] {
		if id := item.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// FindByID returns the position of the record with the given ID.
func (s *Store[T]) FindByID(id int) (int, error) {
	return s.Find(func(item T) bool {
		return item.RecordID() == id
	})
}

// Find returns the position of the first record matching the predicate.
func (s *Store[T]) Find(match func(T) bool) (int, error) {
	for i, item := range s.items {
		if match(item) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// At returns the record at position i.
func (s *Store[T]) At(i int) (T, error) {
	var zero T
	if err := s.checkIndex(i); err != nil {
		return zero, err
	}
	return s.items[i], nil
}

// Get returns the record with the given ID.
func (s *Store[T]) Get(id int) (T, error) {
	var zero T
	i, err := s.FindByID(id)
	if err != nil {
		return zero, err
	}
	return s.items[i], nil
}

// All returns a copy of the records in store order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds a record at the end. A full store refuses the record and is
// left unchanged.
func (s *Store[T]) Append(item T) error {
	if s.Full() {
		return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, s.capacity)
	}
	s.items = append(s.items, item)
	return nil
}

// RemoveAt deletes the record at position i, shifting later records down
// by one, and returns the removed record.
func (s *Store[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := s.checkIndex(i); err != nil {
		return zero, err
	}
	removed := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return removed, nil
}

// UpdateAt applies update to the record at position i in place and returns
// the updated record. Which fields change is up to the caller.
func (s *Store[T]) UpdateAt(i int, update func(*T)) (T, error) {
	var zero T
	if err := s.checkIndex(i); err != nil {
		return zero, err
	}
	update(&s.items[i])
	return s.items[i], nil
}

// Replace discards the current contents and loads items in order. Items
// beyond capacity are dropped; the number kept is returned.
func (s *Store[T]) Replace(items []T) int {
	if len(items) > s.capacity {
		items = items[:s.capacity]
	}
	s.items = append(s.items[:0], items...)
	return len(s.items)
}

func (s *Store[T]) checkIndex(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: position %d out of range", ErrNotFound, i)
	}
	return nil
}
