package queue

import (
	"sync"

	"github.com/eapache/queue"
)

// LockedQueue is a bounded FIFO guarded by a sync.Mutex.
//
// Items live in an eapache/queue ring, which grows on demand; the size limit
// is enforced here so LockedQueue reports full at the same point the rings do.
// It is safe for any number of producers and consumers and serves as the
// lock-based baseline.
type LockedQueue[T any] struct {
	mu    sync.Mutex
	items *queue.Queue
	size  int
}

// NewLocked creates a LockedQueue holding up to size items.
func NewLocked[T any](size int) *LockedQueue[T] {
	return &LockedQueue[T]{
		items: queue.New(),
		size:  size,
	}
}

// Push adds an item to the queue.
// Returns false if the queue is full.
func (q *LockedQueue[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Length() >= q.size {
		return false
	}
	q.items.Add(v)
	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
func (q *LockedQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.items.Remove().(T), true
}

// Len returns the current number of items in the queue.
func (q *LockedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}

// Cap returns the capacity of the queue.
func (q *LockedQueue[T]) Cap() int {
	return q.size
}
