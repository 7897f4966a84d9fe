package formstate

import (
	"errors"
	"fmt"
)

var (
	// ErrLimitReached is returned by Add when the group is full.
	ErrLimitReached = errors.New("entry limit reached")
	// ErrOutOfRange is returned for an index outside the group.
	ErrOutOfRange = errors.New("entry index out of range")
)

// Repeatable is an ordered group of entries the user can add to and remove
// from, such as several leave periods on one claim. A zero Limit means no
// limit.
type Repeatable[T any] struct {
	Limit   int
	entries []T
}

// NewRepeatable returns a group holding entries.
func NewRepeatable[T any](limit int, entries ...T) *Repeatable[T] {
	return &Repeatable[T]{Limit: limit, entries: append([]T(nil), entries...)}
}

// Len returns the number of entries.
func (r *Repeatable[T]) Len() int {
	return len(r.entries)
}

// Full reports whether Add would fail.
func (r *Repeatable[T]) Full() bool {
	return r.Limit > 0 && len(r.entries) >= r.Limit
}

// Entries returns a copy of the entries in order.
func (r *Repeatable[T]) Entries() []T {
	return append([]T(nil), r.entries...)
}

// At returns the entry at i.
func (r *Repeatable[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(r.entries) {
		return zero, fmt.Errorf("at %d: %w", i, ErrOutOfRange)
	}
	return r.entries[i], nil
}

// Add appends e.
func (r *Repeatable[T]) Add(e T) error {
	if r.Full() {
		return fmt.Errorf("add: %w (%d)", ErrLimitReached, r.Limit)
	}
	r.entries = append(r.entries, e)
	return nil
}

// Replace swaps the entry at i for e.
func (r *Repeatable[T]) Replace(i int, e T) error {
	if i < 0 || i >= len(r.entries) {
		return fmt.Errorf("replace %d: %w", i, ErrOutOfRange)
	}
	r.entries[i] = e
	return nil
}

// Remove deletes the entry at i and returns it.
func (r *Repeatable[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(r.entries) {
		return zero, fmt.Errorf("remove %d: %w", i, ErrOutOfRange)
	}
	e := r.entries[i]
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return e, nil
}
