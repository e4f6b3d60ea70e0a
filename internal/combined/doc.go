// Package combined holds benchmarks that exercise several packages together.
//
// The pipeline benchmarks run a real producer goroutine against a real
// consumer goroutine, which is where the ring variants actually differ:
// the cost of the atomics is mostly cross-core cache-line traffic, and the
// batched ring exists to reduce it. The lock-free-ring benchmarks compare
// against github.com/randomizedcoder/go-lock-free-ring, a sharded MPSC ring.
package combined
