package queue

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// BatchedRing is a RingBuffer whose sides publish their cursor only every
// batch operations.
//
// Each side works from a private copy of its own cursor and a cached copy of
// the peer's last published cursor. The cache is refreshed from the shared
// cursor only when it makes the ring look full (producer) or empty
// (consumer). The shared cursors therefore lag the true positions by up to
// batch-1 slots, which only ever makes the peer under-report available items
// or space.
//
// The final partial batch is not published automatically. A peer that is
// still polling will not see those slots until the owning side crosses the
// next batch boundary or calls Flush.
//
// Use Producer() from exactly one goroutine and Consumer() from exactly one
// other goroutine.
type BatchedRing[T any] struct {
	buf      []T
	capacity uint64
	batch    uint64

	_ cpu.CacheLinePad

	write atomic.Uint64 // Published by producer every batch pushes

	_ cpu.CacheLinePad

	read atomic.Uint64 // Published by consumer every batch pops

	_ cpu.CacheLinePad

	producer BatchProducer[T]

	_ cpu.CacheLinePad

	consumer BatchConsumer[T]

	_ cpu.CacheLinePad
}

// BatchProducer is the producer side of a BatchedRing. Its fields are owned
// by the producing goroutine and never read by the consumer.
type BatchProducer[T any] struct {
	ring       *BatchedRing[T]
	localWrite uint64
	cachedRead uint64
}

// BatchConsumer is the consumer side of a BatchedRing. Its fields are owned
// by the consuming goroutine and never read by the producer.
type BatchConsumer[T any] struct {
	ring        *BatchedRing[T]
	localRead   uint64
	cachedWrite uint64
}

// NewBatchedRing creates a BatchedRing holding up to capacity items that
// publishes cursors every batch operations.
func NewBatchedRing[T any](capacity, batch int) (*BatchedRing[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if batch < 1 || batch > capacity {
		return nil, fmt.Errorf("%w: got %d for capacity %d", ErrInvalidBatch, batch, capacity)
	}

	r := &BatchedRing[T]{
		buf:      make([]T, capacity+1),
		capacity: uint64(capacity),
		batch:    uint64(batch),
	}
	r.producer.ring = r
	r.consumer.ring = r
	return r, nil
}

// Producer returns the ring's only producer handle.
func (r *BatchedRing[T]) Producer() *BatchProducer[T] {
	return &r.producer
}

// Consumer returns the ring's only consumer handle.
func (r *BatchedRing[T]) Consumer() *BatchConsumer[T] {
	return &r.consumer
}

// Len returns the number of items between the published cursors.
// It under-reports by up to batch-1 on each side.
func (r *BatchedRing[T]) Len() int {
	return used(r.write.Load(), r.read.Load(), r.capacity)
}

// Cap returns the capacity of the queue.
func (r *BatchedRing[T]) Cap() int {
	return int(r.capacity)
}

// Batch returns the publish interval.
func (r *BatchedRing[T]) Batch() int {
	return int(r.batch)
}

// Push adds an item to the queue.
// Returns false if the queue is full as of the consumer's last publish.
func (p *BatchProducer[T]) Push(v T) bool {
	r := p.ring
	next := advance(p.localWrite, r.capacity)

	if next == p.cachedRead {
		// Looks full; check what the consumer has actually published
		p.cachedRead = r.read.Load()
		if next == p.cachedRead {
			return false
		}
	}

	r.buf[p.localWrite] = v
	p.localWrite = next

	if next%r.batch == 0 {
		r.write.Store(next)
	}

	return true
}

// Flush publishes the producer's cursor immediately.
func (p *BatchProducer[T]) Flush() {
	p.ring.write.Store(p.localWrite)
}

// Pending returns the number of pushed items the consumer cannot see yet.
func (p *BatchProducer[T]) Pending() int {
	r := p.ring
	return used(p.localWrite, r.write.Load(), r.capacity)
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty as of the producer's last publish.
func (c *BatchConsumer[T]) Pop() (T, bool) {
	var zero T
	r := c.ring

	if c.localRead == c.cachedWrite {
		// Looks empty; check what the producer has actually published
		c.cachedWrite = r.write.Load()
		if c.localRead == c.cachedWrite {
			return zero, false
		}
	}

	v := r.buf[c.localRead]
	r.buf[c.localRead] = zero
	c.localRead = advance(c.localRead, r.capacity)

	if c.localRead%r.batch == 0 {
		r.read.Store(c.localRead)
	}

	return v, true
}

// Flush publishes the consumer's cursor immediately.
func (c *BatchConsumer[T]) Flush() {
	c.ring.read.Store(c.localRead)
}

// Pending returns the number of popped slots the producer cannot reuse yet.
func (c *BatchConsumer[T]) Pending() int {
	r := c.ring
	return used(c.localRead, r.read.Load(), r.capacity)
}
