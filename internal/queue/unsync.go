package queue

import "fmt"

// UnsyncRing has the same layout and algorithm as RingBuffer but keeps its
// cursors in plain fields.
//
// It has NO cross-goroutine visibility guarantee. It is correct only when a
// single goroutine calls both Push and Pop, or when the caller provides its
// own synchronization between them. It exists as a baseline that shows what
// the atomics in RingBuffer cost.
type UnsyncRing[T any] struct {
	buf      []T
	capacity uint64
	write    uint64
	read     uint64
}

// NewUnsyncRing creates an UnsyncRing holding up to capacity items.
func NewUnsyncRing[T any](capacity int) (*UnsyncRing[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &UnsyncRing[T]{
		buf:      make([]T, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// Push adds an item to the queue.
// Returns false if the queue is full.
func (r *UnsyncRing[T]) Push(v T) bool {
	next := advance(r.write, r.capacity)
	if next == r.read {
		return false
	}
	r.buf[r.write] = v
	r.write = next
	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
func (r *UnsyncRing[T]) Pop() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}
	v := r.buf[r.read]
	r.buf[r.read] = zero
	r.read = advance(r.read, r.capacity)
	return v, true
}

// Len returns the current number of items in the queue.
func (r *UnsyncRing[T]) Len() int {
	return used(r.write, r.read, r.capacity)
}

// Cap returns the capacity of the queue.
func (r *UnsyncRing[T]) Cap() int {
	return int(r.capacity)
}
