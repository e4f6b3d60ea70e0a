// Package queue provides bounded SPSC queue implementations.
//
// The lock-free rings are the point of the package:
//   - RingBuffer: capacity+1 slots, one atomic cursor per side
//   - BatchedRing: RingBuffer with per-side shadow cursors that publish
//     only every K operations
//
// The rest exist for comparison:
//   - UnsyncRing: RingBuffer with plain cursors (single goroutine only)
//   - ChannelQueue: buffered channel with select/default
//   - LockedQueue: mutex around github.com/eapache/queue
//
// # SPSC Safety (IMPORTANT)
//
// RingBuffer and BatchedRing are Single-Producer Single-Consumer queues.
// Exactly ONE goroutine may call Push() and exactly ONE goroutine may call
// Pop(). Wrap a queue in Guarded to panic on misuse while debugging.
//
// All implementations are non-blocking: Push returns false if full,
// Pop returns false if empty. Retrying is the caller's business.
package queue

// Producer is the enqueue side of a queue.
type Producer[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool
}

// Consumer is the dequeue side of a queue.
type Consumer[T any] interface {
	// Pop removes and returns an item from the queue.
	// Returns false and the zero value if the queue is empty.
	Pop() (T, bool)
}

// Queue is a single-producer single-consumer queue.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}
