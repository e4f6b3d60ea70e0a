package queue

import "sync/atomic"

// Guarded wraps a Queue with runtime checks for the SPSC contract.
//
// Each Push and Pop marks its side busy with a compare-and-swap and panics if
// the side was already busy, i.e. two goroutines were pushing (or popping) at
// once. The check costs a CAS and a store per call, so it is meant for tests
// and debugging builds rather than the hot path.
type Guarded[T any] struct {
	q Queue[T]

	pushActive atomic.Uint32
	popActive  atomic.Uint32
}

// NewGuarded wraps q.
func NewGuarded[T any](q Queue[T]) *Guarded[T] {
	return &Guarded[T]{q: q}
}

// Push forwards to the wrapped queue.
// Panics if another goroutine is inside Push.
func (g *Guarded[T]) Push(v T) bool {
	if !g.pushActive.CompareAndSwap(0, 1) {
		panic("queue: concurrent Push on SPSC queue - only one producer allowed")
	}
	defer g.pushActive.Store(0)

	return g.q.Push(v)
}

// Pop forwards to the wrapped queue.
// Panics if another goroutine is inside Pop.
func (g *Guarded[T]) Pop() (T, bool) {
	if !g.popActive.CompareAndSwap(0, 1) {
		panic("queue: concurrent Pop on SPSC queue - only one consumer allowed")
	}
	defer g.popActive.Store(0)

	return g.q.Pop()
}

// Compile-time interface checks.
var (
	_ Queue[int]    = (*RingBuffer[int])(nil)
	_ Queue[int]    = (*UnsyncRing[int])(nil)
	_ Queue[int]    = (*ChannelQueue[int])(nil)
	_ Queue[int]    = (*LockedQueue[int])(nil)
	_ Queue[int]    = (*Guarded[int])(nil)
	_ Producer[int] = (*BatchProducer[int])(nil)
	_ Consumer[int] = (*BatchConsumer[int])(nil)
)
