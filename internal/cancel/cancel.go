// Package cancel stops benchmark loops.
//
// The producer and consumer goroutines of a run check for cancellation only
// on their retry path (after a failed Push or Pop), and the outer loop checks
// once per run. Two implementations share the Canceler interface:
//   - ContextCanceler: wraps context.Context, select per Done(); used for
//     the once-per-run check
//   - AtomicCanceler: single atomic load per Done(); used on the retry path
//
// FromContext bridges the two so a signal-driven context can stop a
// hot loop that polls an atomic flag.
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
