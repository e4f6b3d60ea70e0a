// Command compare measures single-goroutine push+pop cost for every queue.
//
// One goroutine pushes and immediately pops, so this isolates the per-call
// cost of each implementation (atomics, locks, channel machinery) from any
// cross-core traffic. Use cmd/spsc for the two-thread benchmark.
//
// Usage:
//
//	go run ./cmd/compare -n 10000000 -size 1024 -batch 4
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/randomizedcoder/go-spsc-ring/internal/queue"
)

type queueInfo struct {
	name   string
	create func() (queue.Producer[int], queue.Consumer[int], error)
}

// both returns q as its own producer and consumer.
func both(q queue.Queue[int], err error) (queue.Producer[int], queue.Consumer[int], error) {
	if err != nil {
		return nil, nil, err
	}
	return q, q, nil
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "queue capacity")
	batch := flag.Int("batch", 4, "publish interval for BatchedRing")
	flag.Parse()

	fmt.Printf("Benchmarking queue push+pop (%d iterations, size=%d)\n", *iterations, *size)
	fmt.Printf("Architecture: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println("─────────────────────────────────────────────────")

	queues := []queueInfo{
		{"Channel", func() (queue.Producer[int], queue.Consumer[int], error) {
			return both(queue.NewChannel[int](*size), nil)
		}},
		{"Locked", func() (queue.Producer[int], queue.Consumer[int], error) {
			return both(queue.NewLocked[int](*size), nil)
		}},
		{"RingBuffer", func() (queue.Producer[int], queue.Consumer[int], error) {
			r, err := queue.NewRingBuffer[int](*size)
			return both(r, err)
		}},
		{fmt.Sprintf("BatchedRing(%d)", *batch), func() (queue.Producer[int], queue.Consumer[int], error) {
			r, err := queue.NewBatchedRing[int](*size, *batch)
			if err != nil {
				return nil, nil, err
			}
			return r.Producer(), r.Consumer(), nil
		}},
		{"UnsyncRing", func() (queue.Producer[int], queue.Consumer[int], error) {
			r, err := queue.NewUnsyncRing[int](*size)
			return both(r, err)
		}},
	}

	results := make([]time.Duration, len(queues))

	for i, info := range queues {
		p, c, err := info.create()
		if err != nil {
			log.Fatalf("%s: %v", info.name, err)
		}
		start := time.Now()
		for j := 0; j < *iterations; j++ {
			p.Push(j)
			c.Pop()
		}
		results[i] = time.Since(start)
	}

	// Results relative to the channel baseline
	fmt.Printf("\nResults (push + pop per iteration):\n")
	baseline := float64(results[0].Nanoseconds()) / float64(*iterations)

	for i, info := range queues {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		speedup := baseline / perOp
		throughput := 1000 / perOp // M ops/sec

		fmt.Printf("  %-20s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			info.name, results[i], perOp, speedup, throughput)
	}

	fmt.Printf("\nNote: UnsyncRing has no cross-goroutine guarantees; it is a floor, not an option.\n")
	fmt.Printf("Note: BatchedRing(1) publishes every operation; larger batches only help across goroutines.\n")
}
