package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoRuns is returned when the history has no matching run.
var ErrNoRuns = errors.New("results: no runs recorded")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run            INTEGER NOT NULL,
	unix_nano      INTEGER NOT NULL,
	variant        TEXT    NOT NULL,
	iterations     INTEGER NOT NULL,
	capacity       INTEGER NOT NULL,
	batch          INTEGER NOT NULL,
	backoff        TEXT    NOT NULL,
	elapsed_ns     INTEGER NOT NULL,
	ns_per_op      REAL    NOT NULL,
	sum            INTEGER NOT NULL,
	producer_waits INTEGER NOT NULL,
	consumer_waits INTEGER NOT NULL,
	digest         TEXT    NOT NULL,
	goos           TEXT    NOT NULL,
	goarch         TEXT    NOT NULL,
	gomaxprocs     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_variant ON runs (variant, ns_per_op);
`

const columns = `run, unix_nano, variant, iterations, capacity, batch, backoff,
	elapsed_ns, ns_per_op, sum, producer_waits, consumer_waits, digest,
	goos, goarch, gomaxprocs`

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert appends rec to the history.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	// sqlite3 stores INTEGER as int64
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Run, rec.UnixNano, rec.Variant, rec.Iterations, rec.Capacity, rec.Batch, rec.Backoff,
		rec.ElapsedNs, rec.NsPerOp, int64(rec.Sum), int64(rec.ProducerWaits), int64(rec.ConsumerWaits),
		rec.Digest, rec.GOOS, rec.GOARCH, rec.GOMAXPROCS,
	)
	if err != nil {
		return fmt.Errorf("insert run %d: %w", rec.Run, err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+columns+` FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Best returns the fastest recorded run of variant at the given capacity.
func (s *Store) Best(ctx context.Context, variant string, capacity int) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+columns+` FROM runs WHERE variant = ? AND capacity = ? ORDER BY ns_per_op ASC LIMIT 1`,
		variant, capacity)
	rec, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: variant %s, capacity %d", ErrNoRuns, variant, capacity)
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(sc scanner) (Record, error) {
	var (
		rec                 Record
		sum, pWaits, cWaits int64
	)
	err := sc.Scan(
		&rec.Run, &rec.UnixNano, &rec.Variant, &rec.Iterations, &rec.Capacity, &rec.Batch, &rec.Backoff,
		&rec.ElapsedNs, &rec.NsPerOp, &sum, &pWaits, &cWaits, &rec.Digest,
		&rec.GOOS, &rec.GOARCH, &rec.GOMAXPROCS,
	)
	if err != nil {
		return Record{}, err
	}
	rec.Sum, rec.ProducerWaits, rec.ConsumerWaits = uint64(sum), uint64(pWaits), uint64(cWaits)
	return rec, nil
}
