package backoff_test

import (
	"testing"

	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
)

func BenchmarkBackoff_Yield_Wait(b *testing.B) {
	p := backoff.New(backoff.Yield, 0)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Wait()
	}
}

func BenchmarkBackoff_SpinYield_Wait(b *testing.B) {
	p := backoff.New(backoff.SpinYield, backoff.DefaultSpins)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Wait()
	}
}
