package harness

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
)

var (
	// ErrChecksum means the consumer's sum differs from 0+1+...+(n-1).
	ErrChecksum = errors.New("harness: checksum mismatch")

	// ErrOrder means the popped stream hashed differently from the pushed one.
	ErrOrder = errors.New("harness: pushed and popped streams differ")
)

// Result is the outcome of one Run.
type Result struct {
	Variant    Variant
	Iterations int
	Capacity   int
	Batch      int
	Backoff    backoff.Kind

	Elapsed  time.Duration
	Sum      uint64
	Received uint64

	// Failed Push/Pop attempts, and how many of those yielded
	ProducerWaits  uint64
	ConsumerWaits  uint64
	ProducerYields uint64
	ConsumerYields uint64

	// SHA3-256 of each stream; nil unless Config.Verify was set
	PushDigest []byte
	PopDigest  []byte
}

// ExpectedSum returns 0+1+...+(n-1) for n iterations.
func ExpectedSum(n int) uint64 {
	if n <= 0 {
		return 0
	}
	u := uint64(n)
	return u * (u - 1) / 2
}

// Verify checks the checksum and, when digests were recorded, that the
// consumer saw exactly the producer's sequence.
func (r Result) Verify() error {
	if want := ExpectedSum(r.Iterations); r.Sum != want {
		return fmt.Errorf("%w: got %d, want %d", ErrChecksum, r.Sum, want)
	}
	if r.PushDigest != nil && !bytes.Equal(r.PushDigest, r.PopDigest) {
		return fmt.Errorf("%w: push %x, pop %x", ErrOrder, r.PushDigest, r.PopDigest)
	}
	return nil
}

// NsPerOp returns the elapsed time per transferred value.
func (r Result) NsPerOp() float64 {
	if r.Received == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Received)
}

// MOpsPerSec returns the throughput in millions of values per second.
func (r Result) MOpsPerSec() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return 1000 / ns
}

// String formats r the way the reference benchmark prints a run.
func (r Result) String() string {
	return fmt.Sprintf("time: %dms sum: %d", r.Elapsed.Milliseconds(), r.Sum)
}
