package cancel

import "context"

// ContextCanceler adapts a context.Context to the Canceler interface.
//
// Done() is a non-blocking select on the context, which is fine once per
// run in harness.Loop but too slow for a retry loop. Context() exposes the
// derived context so FromContext can feed an AtomicCanceler from it, and
// Cancel() releases that helper when the loop returns.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextCanceler from a parent context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancel(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the context.
func (c *ContextCanceler) Cancel() {
	c.cancel()
}

// Context returns the underlying context.Context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
