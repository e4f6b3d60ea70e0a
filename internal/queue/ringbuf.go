package queue

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RingBuffer is a lock-free SPSC (Single-Producer Single-Consumer) queue.
//
// Storage holds capacity+1 slots. The spare slot keeps "full" and "empty"
// apart: the ring is empty when write == read and full when
// advance(write) == read.
//
// The producer writes a slot and only then stores the write cursor; the
// consumer loads the write cursor before touching the slot. sync/atomic
// Load/Store are sequentially consistent, so the slot write is visible to
// any consumer that has observed the new cursor. The read cursor works the
// same way in the other direction.
//
// WARNING: This queue is NOT safe for multiple producers or multiple consumers.
type RingBuffer[T any] struct {
	buf      []T
	capacity uint64

	_ cpu.CacheLinePad

	write atomic.Uint64 // Written by producer, read by consumer

	_ cpu.CacheLinePad

	read atomic.Uint64 // Written by consumer, read by producer

	_ cpu.CacheLinePad
}

// NewRingBuffer creates a RingBuffer holding up to capacity items.
func NewRingBuffer[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &RingBuffer[T]{
		buf:      make([]T, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// Push adds an item to the queue.
// Returns false if the queue is full; v is not stored.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (r *RingBuffer[T]) Push(v T) bool {
	write := r.write.Load()
	next := advance(write, r.capacity)

	if next == r.read.Load() {
		return false
	}

	r.buf[write] = v

	// Publish the slot
	r.write.Store(next)

	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (r *RingBuffer[T]) Pop() (T, bool) {
	var zero T

	read := r.read.Load()
	if read == r.write.Load() {
		return zero, false
	}

	v := r.buf[read]
	r.buf[read] = zero

	// Hand the slot back to the producer
	r.read.Store(advance(read, r.capacity))

	return v, true
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (r *RingBuffer[T]) Len() int {
	return used(r.write.Load(), r.read.Load(), r.capacity)
}

// Cap returns the capacity of the queue.
func (r *RingBuffer[T]) Cap() int {
	return int(r.capacity)
}

// advance returns the slot after s in a ring of capacity+1 slots.
func advance(s, capacity uint64) uint64 {
	if s < capacity {
		return s + 1
	}
	return 0
}

// used returns (write - read) mod (capacity+1).
func used(write, read, capacity uint64) int {
	if write >= read {
		return int(write - read)
	}
	return int(write + capacity + 1 - read)
}
