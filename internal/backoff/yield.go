package backoff

import "runtime"

// YieldPolicy gives up the processor after every failure.
type YieldPolicy struct {
	waits uint64
}

// Wait yields the processor.
func (y *YieldPolicy) Wait() {
	y.waits++
	runtime.Gosched()
}

// Reset is a no-op; YieldPolicy has no streak.
func (y *YieldPolicy) Reset() {}

// Waits returns the total number of Wait calls.
func (y *YieldPolicy) Waits() uint64 {
	return y.waits
}

// Yields equals Waits.
func (y *YieldPolicy) Yields() uint64 {
	return y.waits
}

// SpinPolicy retries immediately. With fewer free CPUs than spinning
// goroutines it relies on asynchronous preemption to make progress.
type SpinPolicy struct {
	waits uint64
}

// Wait returns immediately.
func (s *SpinPolicy) Wait() {
	s.waits++
}

// Reset is a no-op.
func (s *SpinPolicy) Reset() {}

// Waits returns the total number of Wait calls.
func (s *SpinPolicy) Waits() uint64 {
	return s.waits
}

// Yields is always zero.
func (s *SpinPolicy) Yields() uint64 {
	return 0
}
