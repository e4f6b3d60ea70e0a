package backoff

import "runtime"

// SpinYieldPolicy spins for a streak of failures and yields only every
// spins-th consecutive failure.
type SpinYieldPolicy struct {
	spins  int
	streak int
	waits  uint64
	yields uint64
}

// NewSpinYield creates a SpinYieldPolicy yielding every spins failures.
// Values below one are treated as one (yield every time).
func NewSpinYield(spins int) *SpinYieldPolicy {
	if spins < 1 {
		spins = 1
	}
	return &SpinYieldPolicy{spins: spins}
}

// Wait spins, or yields if the streak has reached the limit.
func (s *SpinYieldPolicy) Wait() {
	s.waits++
	s.streak++
	if s.streak < s.spins {
		return
	}
	s.streak = 0
	s.yields++
	runtime.Gosched()
}

// Reset ends the current streak.
func (s *SpinYieldPolicy) Reset() {
	s.streak = 0
}

// Waits returns the total number of Wait calls.
func (s *SpinYieldPolicy) Waits() uint64 {
	return s.waits
}

// Yields returns how many Wait calls yielded.
func (s *SpinYieldPolicy) Yields() uint64 {
	return s.yields
}

// Spins returns the streak length.
func (s *SpinYieldPolicy) Spins() int {
	return s.spins
}
