// Command spsc runs the two-thread SPSC ring buffer benchmark in a loop.
//
// Each run moves -n integers from a producer goroutine to a consumer
// goroutine, both locked to their own OS thread, and prints the elapsed
// time and the consumer's sum. Runs repeat until -runs is reached or the
// process receives SIGINT/SIGTERM (-runs 0 loops forever).
//
// Usage:
//
//	go run ./cmd/spsc -n 10000000 -size 1024
//	go run ./cmd/spsc -variant batched -batch 4 -runs 10 -verify
//	go run ./cmd/spsc -producer-cpu 2 -consumer-cpu 3 -json -history runs.db
//	go run ./cmd/spsc -history runs.db -last 20
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/randomizedcoder/go-spsc-ring/internal/affinity"
	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
	"github.com/randomizedcoder/go-spsc-ring/internal/harness"
	"github.com/randomizedcoder/go-spsc-ring/internal/results"
)

func main() {
	def := harness.DefaultConfig()

	iterations := flag.Int("n", def.Iterations, "values per run")
	size := flag.Int("size", def.Capacity, "queue capacity")
	variant := flag.String("variant", def.Variant.String(), "queue: direct, batched, channel or locked")
	batch := flag.Int("batch", def.Batch, "publish interval for -variant batched")
	policy := flag.String("backoff", def.Backoff.String(), "retry policy: yield, spin or spin-yield")
	spins := flag.Int("spins", def.Spins, "spins before yielding for -backoff spin-yield")
	runs := flag.Int("runs", 0, "number of runs (0 = until interrupted)")
	producerCPU := flag.Int("producer-cpu", def.ProducerCPU, "pin the producer thread to this CPU (-1 = no pin)")
	consumerCPU := flag.Int("consumer-cpu", def.ConsumerCPU, "pin the consumer thread to this CPU (-1 = no pin)")
	verify := flag.Bool("verify", false, "hash both streams and check order and completeness")
	asJSON := flag.Bool("json", false, "print one JSON record per run")
	history := flag.String("history", "", "append runs to this SQLite database")
	last := flag.Int("last", 0, "print the last N runs from -history and exit")
	flag.Parse()

	cfg := def
	cfg.Iterations = *iterations
	cfg.Capacity = *size
	cfg.Batch = *batch
	cfg.Spins = *spins
	cfg.ProducerCPU = *producerCPU
	cfg.ConsumerCPU = *consumerCPU
	cfg.Verify = *verify

	var err error
	if cfg.Variant, err = harness.ParseVariant(*variant); err != nil {
		log.Fatal(err)
	}
	if cfg.Backoff, err = backoff.ParseKind(*policy); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *results.Store
	if *history != "" {
		if store, err = results.Open(*history); err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	if *last > 0 {
		if store == nil {
			log.Fatal("-last needs -history")
		}
		if err := printRecent(store, *last); err != nil {
			log.Fatal(err)
		}
		return
	}

	if !*asJSON {
		fmt.Printf("SPSC benchmark: %s queue, %d values, size=%d", cfg.Variant, cfg.Iterations, cfg.Capacity)
		if cfg.Variant == harness.Batched {
			fmt.Printf(", batch=%d", cfg.Batch)
		}
		fmt.Printf(", backoff=%s, GOMAXPROCS=%d\n", cfg.Backoff, runtime.GOMAXPROCS(0))
		if cfg.ProducerCPU >= 0 || cfg.ConsumerCPU >= 0 {
			if cpus, err := affinity.Allowed(); err == nil {
				fmt.Printf("Pinning producer=%d consumer=%d, allowed CPUs: %v\n", cfg.ProducerCPU, cfg.ConsumerCPU, cpus)
			}
		}
		fmt.Println("─────────────────────────────────────────────────")
	}

	report := func(i int, res harness.Result) error {
		if cfg.Verify {
			if err := res.Verify(); err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
		}

		rec := results.FromResult(i, time.Now(), res)
		if store != nil {
			if err := store.Insert(context.Background(), rec); err != nil {
				return err
			}
		}

		if *asJSON {
			data, err := results.Marshal(rec)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("%s  (%.2f ns/op, %.2f M/s, waits p=%d c=%d)\n",
			res, res.NsPerOp(), res.MOpsPerSec(), res.ProducerWaits, res.ConsumerWaits)
		return nil
	}

	if err := harness.Loop(ctx, cfg, *runs, report); err != nil {
		log.Fatal(err)
	}

	if store != nil && !*asJSON {
		best, err := store.Best(context.Background(), cfg.Variant.String(), cfg.Capacity)
		switch {
		case errors.Is(err, results.ErrNoRuns):
		case err != nil:
			log.Print(err)
		default:
			fmt.Printf("\nBest recorded %s run at size=%d: %v (%.2f ns/op)\n",
				best.Variant, best.Capacity, best.Elapsed(), best.NsPerOp)
		}
	}
}

// printRecent lists the newest n runs in the history.
func printRecent(store *results.Store, n int) error {
	recs, err := store.Recent(context.Background(), n)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}
	for _, r := range recs {
		fmt.Printf("%s  %-8s size=%-6d batch=%-4d %12v  %8.2f ns/op  sum=%d\n",
			time.Unix(0, r.UnixNano).Format(time.DateTime), r.Variant, r.Capacity, r.Batch,
			r.Elapsed(), r.NsPerOp, r.Sum)
	}
	return nil
}
