package harness

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
)

// Variant selects the queue a run drives.
type Variant int

const (
	Direct  Variant = iota // queue.RingBuffer
	Batched                // queue.BatchedRing
	Channel                // queue.ChannelQueue
	Locked                 // queue.LockedQueue
)

var variantNames = map[Variant]string{
	Direct:  "direct",
	Batched: "batched",
	Channel: "channel",
	Locked:  "locked",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a flag value to a Variant. The unsynchronized ring is
// deliberately absent: it is not safe across two goroutines.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Defaults match the reference benchmark: ten million integers through a
// 1024-slot ring, yielding on every failed attempt.
const (
	DefaultIterations = 10_000_000
	DefaultCapacity   = 1024
	DefaultBatch      = 4
)

// ErrInvalidConfig wraps every Config.Validate failure.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Config describes one producer/consumer run.
type Config struct {
	Iterations int
	Capacity   int
	Variant    Variant
	Batch      int // Batched only
	Backoff    backoff.Kind
	Spins      int // SpinYield only

	// CPUs to pin the producer and consumer threads to; -1 leaves them free.
	ProducerCPU int
	ConsumerCPU int

	// Verify hashes both streams so order and completeness can be checked.
	// It slows the hot loop noticeably.
	Verify bool
}

// DefaultConfig returns the reference benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Iterations:  DefaultIterations,
		Capacity:    DefaultCapacity,
		Variant:     Direct,
		Batch:       DefaultBatch,
		Backoff:     backoff.Yield,
		Spins:       backoff.DefaultSpins,
		ProducerCPU: -1,
		ConsumerCPU: -1,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.Variant == Batched && (c.Batch < 1 || c.Batch > c.Capacity):
		return fmt.Errorf("%w: batch must be in [1, %d], got %d", ErrInvalidConfig, c.Capacity, c.Batch)
	}
	if _, ok := variantNames[c.Variant]; !ok {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, int(c.Variant))
	}
	return nil
}
