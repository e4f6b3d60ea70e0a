// Package harness drives one producer goroutine and one consumer goroutine
// through a queue and times the transfer.
//
// A run mirrors the classic two-thread ring buffer benchmark: the producer
// pushes 0..n-1, retrying through a backoff.Policy whenever the queue is
// full; the consumer pops n values, retrying whenever it is empty, and sums
// them. Both goroutines are locked to their own OS thread and optionally
// pinned to a CPU. Loop repeats runs until cancelled.
package harness

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"runtime"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/randomizedcoder/go-spsc-ring/internal/affinity"
	"github.com/randomizedcoder/go-spsc-ring/internal/backoff"
	"github.com/randomizedcoder/go-spsc-ring/internal/cancel"
	"github.com/randomizedcoder/go-spsc-ring/internal/queue"
)

// ErrCancelled is returned when a run is stopped before all values moved.
var ErrCancelled = errors.New("harness: run cancelled")

// endpoints builds the queue for cfg and returns its two sides. flush, if
// non-nil, is called by the producer after its last push.
func endpoints(cfg Config) (queue.Producer[uint64], queue.Consumer[uint64], func(), error) {
	switch cfg.Variant {
	case Direct:
		q, err := queue.NewRingBuffer[uint64](cfg.Capacity)
		if err != nil {
			return nil, nil, nil, err
		}
		return q, q, nil, nil
	case Batched:
		r, err := queue.NewBatchedRing[uint64](cfg.Capacity, cfg.Batch)
		if err != nil {
			return nil, nil, nil, err
		}
		// The last partial batch is never published on its own
		p := r.Producer()
		return p, r.Consumer(), p.Flush, nil
	case Channel:
		q := queue.NewChannel[uint64](cfg.Capacity)
		return q, q, nil, nil
	case Locked:
		q := queue.NewLocked[uint64](cfg.Capacity)
		return q, q, nil, nil
	}
	return nil, nil, nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, int(cfg.Variant))
}

// side is what one goroutine reports back.
type side struct {
	waits  uint64
	yields uint64
	digest []byte
	err    error
}

// Run performs one timed transfer of cfg.Iterations values. c may be nil.
// A cancelled run returns the partial Result with ErrCancelled.
func Run(c cancel.Canceler, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	p, q, flush, err := endpoints(cfg)
	if err != nil {
		return Result{}, err
	}

	// abort stops the peer when one side fails to set up
	abort := cancel.NewAtomic()
	stopped := func() bool {
		return abort.Done() || (c != nil && c.Done())
	}

	n := uint64(cfg.Iterations)
	var (
		wg        sync.WaitGroup
		prod, con side
		sum       uint64
		received  uint64
	)

	start := time.Now()

	wg.Add(2)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.Pin(cfg.ProducerCPU); err != nil {
			prod.err = fmt.Errorf("producer: %w", err)
			abort.Cancel()
			return
		}

		policy := backoff.New(cfg.Backoff, cfg.Spins)
		h := newDigest(cfg.Verify)
		for i := uint64(0); i < n; i++ {
			for !p.Push(i) {
				if stopped() {
					prod.err = ErrCancelled
					return
				}
				policy.Wait()
			}
			policy.Reset()
			h.add(i)
		}
		if flush != nil {
			flush()
		}
		prod.waits, prod.yields, prod.digest = policy.Waits(), policy.Yields(), h.sum()
	}()

	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.Pin(cfg.ConsumerCPU); err != nil {
			con.err = fmt.Errorf("consumer: %w", err)
			abort.Cancel()
			return
		}

		policy := backoff.New(cfg.Backoff, cfg.Spins)
		h := newDigest(cfg.Verify)
		var local uint64
		for received = 0; received < n; received++ {
			v, ok := q.Pop()
			for !ok {
				if stopped() {
					sum = local
					con.err = ErrCancelled
					return
				}
				policy.Wait()
				v, ok = q.Pop()
			}
			policy.Reset()
			local += v
			h.add(v)
		}
		sum = local
		con.waits, con.yields, con.digest = policy.Waits(), policy.Yields(), h.sum()
	}()

	wg.Wait()
	elapsed := time.Since(start)

	res := Result{
		Variant:        cfg.Variant,
		Iterations:     cfg.Iterations,
		Capacity:       cfg.Capacity,
		Batch:          cfg.Batch,
		Backoff:        cfg.Backoff,
		Elapsed:        elapsed,
		Sum:            sum,
		Received:       received,
		ProducerWaits:  prod.waits,
		ConsumerWaits:  con.waits,
		ProducerYields: prod.yields,
		ConsumerYields: con.yields,
		PushDigest:     prod.digest,
		PopDigest:      con.digest,
	}
	if cfg.Variant != Batched {
		res.Batch = 0
	}

	// Report a setup failure ahead of the cancellation it caused
	for _, err := range []error{prod.err, con.err} {
		if err != nil && !errors.Is(err, ErrCancelled) {
			return res, err
		}
	}
	if prod.err != nil || con.err != nil {
		return res, ErrCancelled
	}
	return res, nil
}

// Loop calls Run repeatedly, passing each Result to report, until runs
// have completed (runs <= 0 means forever), ctx is done, Run fails, or
// report returns an error.
//
// Between runs Loop checks ctx through a ContextCanceler. Inside a run the
// producer and consumer poll an AtomicCanceler fed from the same context.
func Loop(ctx context.Context, cfg Config, runs int, report func(int, Result) error) error {
	outer := cancel.NewContext(ctx)
	defer outer.Cancel()
	hot := cancel.FromContext(outer.Context())

	for i := 0; runs <= 0 || i < runs; i++ {
		if outer.Done() {
			return nil
		}
		res, err := Run(hot, cfg)
		if errors.Is(err, ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := report(i, res); err != nil {
			return err
		}
	}
	return nil
}

// digest hashes a stream of values with SHA3-256. A disabled digest
// is a no-op that returns nil.
type digest struct {
	h   hash.Hash
	buf [8]byte
}

func newDigest(enabled bool) *digest {
	if !enabled {
		return &digest{}
	}
	return &digest{h: sha3.New256()}
}

func (d *digest) add(v uint64) {
	if d.h == nil {
		return
	}
	binary.LittleEndian.PutUint64(d.buf[:], v)
	d.h.Write(d.buf[:])
}

func (d *digest) sum() []byte {
	if d.h == nil {
		return nil
	}
	return d.h.Sum(nil)
}
