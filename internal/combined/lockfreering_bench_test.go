package combined_test

import (
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/go-spsc-ring/internal/queue"
)

// ============================================================================
// Comparison Benchmarks: RingBuffer / BatchedRing vs go-lock-free-ring (MPSC)
// ============================================================================
//
// KEY DIFFERENCE:
// - RingBuffer, BatchedRing: SPSC (Single-Producer, Single-Consumer)
// - go-lock-free-ring: MPSC (Multi-Producer, Single-Consumer) with sharding
//
// The sharded MPSC design is optimized for multiple producers, not single.

// ============================================================================
// SPSC: 1 Producer → 1 Consumer
// ============================================================================

func BenchmarkLFR_SPSC_RingBuffer(b *testing.B) {
	q := newRing(b, 1024)
	pipeline(b, q, q)
}

func BenchmarkLFR_SPSC_BatchedRing(b *testing.B) {
	r := newBatched(b, 1024, 4)
	pipeline(b, r.Producer(), r.Consumer())
}

// BenchmarkLFR_SPSC_ShardedRing1 - go-lock-free-ring with 1 shard (SPSC-like)
func BenchmarkLFR_SPSC_ShardedRing1(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
	<-consumerDone
}

// ============================================================================
// MPSC: 4 Producers → 1 Consumer (outside the SPSC rings' contract)
// ============================================================================

// BenchmarkLFR_MPSC_Locked_4P - 4 producers sharing the mutex baseline
func BenchmarkLFR_MPSC_Locked_4P(b *testing.B) {
	q := queue.NewLocked[int](1024)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			for !q.Push(i) {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}

// BenchmarkLFR_MPSC_ShardedRing_4P_4S - 4 producers, 4 shards
func BenchmarkLFR_MPSC_ShardedRing_4P_4S(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 4)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		i := 0
		for pb.Next() {
			for !r.Write(pid, i) {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}
