// Package results turns harness runs into records that can be printed as
// JSON or kept in a SQLite history.
package results

import (
	"encoding/hex"
	"runtime"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/randomizedcoder/go-spsc-ring/internal/harness"
)

// Record is one run, flattened for storage.
type Record struct {
	Run        int     `json:"run"`
	UnixNano   int64   `json:"unix_nano"`
	Variant    string  `json:"variant"`
	Iterations int     `json:"iterations"`
	Capacity   int     `json:"capacity"`
	Batch      int     `json:"batch,omitempty"`
	Backoff    string  `json:"backoff"`
	ElapsedNs  int64   `json:"elapsed_ns"`
	NsPerOp    float64 `json:"ns_per_op"`
	Sum        uint64  `json:"sum"`

	ProducerWaits uint64 `json:"producer_waits"`
	ConsumerWaits uint64 `json:"consumer_waits"`

	Digest string `json:"digest,omitempty"`

	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

// FromResult builds the Record for run number run, finished at at.
func FromResult(run int, at time.Time, r harness.Result) Record {
	return Record{
		Run:           run,
		UnixNano:      at.UnixNano(),
		Variant:       r.Variant.String(),
		Iterations:    r.Iterations,
		Capacity:      r.Capacity,
		Batch:         r.Batch,
		Backoff:       r.Backoff.String(),
		ElapsedNs:     r.Elapsed.Nanoseconds(),
		NsPerOp:       r.NsPerOp(),
		Sum:           r.Sum,
		ProducerWaits: r.ProducerWaits,
		ConsumerWaits: r.ConsumerWaits,
		Digest:        hex.EncodeToString(r.PopDigest),
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
	}
}

// Elapsed returns the run's wall-clock duration.
func (r Record) Elapsed() time.Duration {
	return time.Duration(r.ElapsedNs)
}

// Marshal encodes rec as a single JSON object.
func Marshal(rec Record) ([]byte, error) {
	return sonnet.Marshal(rec)
}

// Unmarshal decodes a JSON object produced by Marshal.
func Unmarshal(data []byte) (Record, error) {
	var rec Record
	err := sonnet.Unmarshal(data, &rec)
	return rec, err
}
