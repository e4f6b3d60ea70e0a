package cancel

import (
	"context"
	"sync/atomic"
)

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Done() is a single atomic load, cheap enough to call from a retry loop
// without disturbing the timing it is measuring.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// FromContext returns an AtomicCanceler that is cancelled when ctx is done.
//
// A helper goroutine waits on ctx; it exits when ctx is done, so callers
// should pass a context they eventually cancel.
func FromContext(ctx context.Context) *AtomicCanceler {
	a := NewAtomic()
	go func() {
		<-ctx.Done()
		a.Cancel()
	}()
	return a
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}
