package backoff_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want backoff.Kind
	}{
		{"yield", backoff.Yield},
		{"spin", backoff.Spin},
		{"spin-yield", backoff.SpinYield},
	}
	for _, tc := range tests {
		got, err := backoff.ParseKind(tc.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}

	if _, err := backoff.ParseKind("sleep"); !errors.Is(err, backoff.ErrUnknownKind) {
		t.Errorf("ParseKind(sleep): expected ErrUnknownKind, got %v", err)
	}
}

func TestYieldPolicy(t *testing.T) {
	p := backoff.New(backoff.Yield, 0)
	for i := 0; i < 5; i++ {
		p.Wait()
	}
	if p.Waits() != 5 || p.Yields() != 5 {
		t.Errorf("expected 5 waits and 5 yields, got %d and %d", p.Waits(), p.Yields())
	}
}

func TestSpinPolicy(t *testing.T) {
	p := backoff.New(backoff.Spin, 0)
	for i := 0; i < 5; i++ {
		p.Wait()
	}
	if p.Waits() != 5 || p.Yields() != 0 {
		t.Errorf("expected 5 waits and 0 yields, got %d and %d", p.Waits(), p.Yields())
	}
}

func TestSpinYieldPolicy(t *testing.T) {
	p := backoff.NewSpinYield(3)

	// First 2 waits spin, the 3rd yields
	for i := 0; i < 7; i++ {
		p.Wait()
	}
	if p.Yields() != 2 {
		t.Errorf("expected 2 yields after 7 waits, got %d", p.Yields())
	}

	// Reset starts a new streak
	p.Reset()
	p.Wait()
	p.Wait()
	if p.Yields() != 2 {
		t.Errorf("expected no yield within a fresh streak, got %d", p.Yields())
	}
	p.Wait()
	if p.Yields() != 3 {
		t.Errorf("expected a yield at the end of the streak, got %d", p.Yields())
	}
	if p.Waits() != 10 {
		t.Errorf("expected Waits() = 10, got %d", p.Waits())
	}
}

func TestSpinYieldPolicy_MinimumSpins(t *testing.T) {
	p := backoff.NewSpinYield(0)
	if p.Spins() != 1 {
		t.Errorf("expected Spins() = 1, got %d", p.Spins())
	}
	p.Wait()
	if p.Yields() != 1 {
		t.Errorf("expected every wait to yield, got %d yields", p.Yields())
	}
}

func TestNew_Kinds(t *testing.T) {
	if _, ok := backoff.New(backoff.SpinYield, 10).(*backoff.SpinYieldPolicy); !ok {
		t.Error("expected New(SpinYield) to return *SpinYieldPolicy")
	}
	if _, ok := backoff.New(backoff.Spin, 10).(*backoff.SpinPolicy); !ok {
		t.Error("expected New(Spin) to return *SpinPolicy")
	}
	if _, ok := backoff.New(backoff.Yield, 10).(*backoff.YieldPolicy); !ok {
		t.Error("expected New(Yield) to return *YieldPolicy")
	}
}
