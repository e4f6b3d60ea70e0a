// Package backoff provides retry policies for callers spinning on a
// non-blocking queue.
//
// The queues in internal/queue never wait; when Push finds the ring full or
// Pop finds it empty the caller decides what to do before trying again.
// This package offers three answers:
//   - Yield: runtime.Gosched() after every failure
//   - Spin: retry immediately, never give up the thread
//   - SpinYield: spin N times, then yield once
//
// A Policy carries per-goroutine state. Create one per producer and one per
// consumer; do not share them.
package backoff

import (
	"errors"
	"fmt"
)

// Policy is called after each failed Push or Pop.
type Policy interface {
	// Wait backs off once before the caller retries.
	Wait()

	// Reset is called after a successful operation and ends the current
	// streak of failures.
	Reset()

	// Waits returns the total number of Wait calls.
	Waits() uint64

	// Yields returns how many of those waits gave up the processor.
	Yields() uint64
}

// Kind names a Policy.
type Kind int

const (
	Yield     Kind = iota // runtime.Gosched() every failure
	Spin                  // busy-spin
	SpinYield             // spin, then yield every N failures
)

// DefaultSpins is the SpinYield streak before yielding.
const DefaultSpins = 1000

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("backoff: unknown policy")

// ParseKind maps a flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "yield":
		return Yield, nil
	case "spin":
		return Spin, nil
	case "spin-yield":
		return SpinYield, nil
	}
	return 0, fmt.Errorf("%w: %q (want yield, spin or spin-yield)", ErrUnknownKind, s)
}

func (k Kind) String() string {
	switch k {
	case Yield:
		return "yield"
	case Spin:
		return "spin"
	case SpinYield:
		return "spin-yield"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// New creates a fresh Policy of kind k. spins is used only by SpinYield.
func New(k Kind, spins int) Policy {
	switch k {
	case Spin:
		return &SpinPolicy{}
	case SpinYield:
		return NewSpinYield(spins)
	default:
		return &YieldPolicy{}
	}
}
