package listing

import "sync"

// Slot is a single-slot reference cell for values that change over the
// lifetime of the form, typically notification and navigation callbacks
// supplied by the presentation layer. Long-lived tasks hold the Slot and
// read it at call time instead of capturing the value when they start, so
// a callback swapped mid-flight is never stale.
type Slot[T any] struct {
	mu sync.Mutex
	v  T
}

// NewSlot returns a cell seeded with v.
func NewSlot[T any](v T) *Slot[T] {
	s := &Slot[T]{}
	s.v = v
	return s
}

// Store replaces the held value.
func (s *Slot[T]) Store(v T) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}

// Load returns the current value.
func (s *Slot[T]) Load() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}
