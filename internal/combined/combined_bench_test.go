package combined_test

import (
	"testing"

	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
	"github.com/randomizedcoder/go-spsc-ring/internal/cancel"
	"github.com/randomizedcoder/go-spsc-ring/internal/harness"
	"github.com/randomizedcoder/go-spsc-ring/internal/queue"
)

// Sink variables
var sinkInt int
var sinkBool bool

func newRing(b *testing.B, size int) *queue.RingBuffer[int] {
	q, err := queue.NewRingBuffer[int](size)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

func newBatched(b *testing.B, size, batch int) *queue.BatchedRing[int] {
	r, err := queue.NewBatchedRing[int](size, batch)
	if err != nil {
		b.Fatal(err)
	}
	return r
}

// ============================================================================
// Hot loop benchmarks (cancel check + queue recycle)
// ============================================================================

// BenchmarkCombined_HotLoop_Channel checks an atomic stop flag and recycles
// one item through a channel queue per iteration.
func BenchmarkCombined_HotLoop_Channel(b *testing.B) {
	stop := cancel.NewAtomic()
	q := queue.NewChannel[int](1024)

	// Pre-fill queue
	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok, cancelled bool
	for i := 0; i < b.N; i++ {
		cancelled = stop.Done()
		val, ok = q.Pop()
		q.Push(val) // Recycle
	}
	sinkInt = val
	sinkBool = ok || cancelled
}

// BenchmarkCombined_HotLoop_RingBuffer is the same loop over the direct ring.
func BenchmarkCombined_HotLoop_RingBuffer(b *testing.B) {
	stop := cancel.NewAtomic()
	q := newRing(b, 1024)

	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok, cancelled bool
	for i := 0; i < b.N; i++ {
		cancelled = stop.Done()
		val, ok = q.Pop()
		q.Push(val) // Recycle
	}
	sinkInt = val
	sinkBool = ok || cancelled
}

// ============================================================================
// Pipeline benchmarks (producer/consumer)
// ============================================================================

// pipeline runs a consumer goroutine that drains c until the benchmark ends
// while the benchmark goroutine pushes b.N items into p.
func pipeline(b *testing.B, p queue.Producer[int], c queue.Consumer[int]) {
	stop := cancel.NewAtomic()
	consumerDone := make(chan struct{})

	// Consumer goroutine (single consumer - SPSC contract)
	go func() {
		defer close(consumerDone)
		for !stop.Done() {
			c.Pop()
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	// Producer (single producer - SPSC contract)
	for i := 0; i < b.N; i++ {
		for !p.Push(i) {
			// Spin until push succeeds
		}
	}

	b.StopTimer()
	stop.Cancel()
	<-consumerDone
}

func BenchmarkPipeline_Channel(b *testing.B) {
	q := queue.NewChannel[int](1024)
	pipeline(b, q, q)
}

func BenchmarkPipeline_Locked(b *testing.B) {
	q := queue.NewLocked[int](1024)
	pipeline(b, q, q)
}

func BenchmarkPipeline_RingBuffer(b *testing.B) {
	q := newRing(b, 1024)
	pipeline(b, q, q)
}

func BenchmarkPipeline_BatchedRing_4(b *testing.B) {
	r := newBatched(b, 1024, 4)
	pipeline(b, r.Producer(), r.Consumer())
}

func BenchmarkPipeline_BatchedRing_32(b *testing.B) {
	r := newBatched(b, 1024, 32)
	pipeline(b, r.Producer(), r.Consumer())
}

// ============================================================================
// Harness benchmarks (full run incl. thread locking and backoff)
// ============================================================================

func benchHarness(b *testing.B, v harness.Variant, kind backoff.Kind) {
	cfg := harness.DefaultConfig()
	cfg.Iterations = 100_000
	cfg.Variant = v
	cfg.Backoff = kind

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, err := harness.Run(nil, cfg)
		if err != nil {
			b.Fatal(err)
		}
		if err := res.Verify(); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(b.Elapsed().Nanoseconds())/float64(b.N*cfg.Iterations), "ns/value")
}

func BenchmarkHarness_Direct_Yield(b *testing.B) {
	benchHarness(b, harness.Direct, backoff.Yield)
}

func BenchmarkHarness_Batched_Yield(b *testing.B) {
	benchHarness(b, harness.Batched, backoff.Yield)
}

func BenchmarkHarness_Direct_SpinYield(b *testing.B) {
	benchHarness(b, harness.Direct, backoff.SpinYield)
}

func BenchmarkHarness_Batched_SpinYield(b *testing.B) {
	benchHarness(b, harness.Batched, backoff.SpinYield)
}
