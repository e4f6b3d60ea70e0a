package queue

// ChannelQueue adapts a buffered channel to the Queue interface.
//
// It is the stdlib reference point for the rings: every Push and Pop is a
// select with a default case, so the runtime takes the channel lock on each
// call.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue holding up to size items.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Push adds an item without blocking.
// Returns false if the channel buffer is full.
func (q *ChannelQueue[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes an item without blocking.
// Returns false if the channel buffer is empty.
func (q *ChannelQueue[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of buffered items.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the channel buffer size.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
