// Package affinity pins the calling OS thread to a CPU.
//
// Callers must hold the thread with runtime.LockOSThread before calling Pin;
// otherwise the goroutine may migrate to an unpinned thread.
package affinity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported is returned on platforms without thread affinity.
	ErrNotSupported = errors.New("affinity: CPU pinning not supported on this platform")

	// ErrInvalidCPU is returned for a CPU index outside the allowed set.
	ErrInvalidCPU = errors.New("affinity: invalid CPU")
)

// Pin binds the calling OS thread to cpu. A negative cpu is a no-op.
func Pin(cpu int) error {
	if cpu < 0 {
		return nil
	}
	if err := pin(cpu); err != nil {
		return fmt.Errorf("pin to CPU %d: %w", cpu, err)
	}
	return nil
}

// Allowed returns the CPUs the calling thread may run on.
func Allowed() ([]int, error) {
	return allowed()
}
