// Package store persists engine reports in SQLite.
//
// Schema:
//
//	runs(id, created_at, config, stats)
//	candidates(run_id, seq, wild_type_id, strategy, key, predicted_fitness, payload)
//
// config, stats and payload are JSON documents; the scalar candidate columns
// are duplicated out of payload so runs can be queried with plain SQL.
// Candidates are stored in report order and read back by seq.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/engine"
)

var (
	// ErrEmptyPath is returned by Open for an empty database path.
	ErrEmptyPath = errors.New("store: path is required")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store: closed")

	// ErrRunNotFound is returned when a run ID is unknown.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrDuplicateRun is returned when a report with the same RunID exists.
	ErrDuplicateRun = errors.New("store: run already saved")
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	config     TEXT NOT NULL,
	stats      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS candidates (
	run_id            TEXT    NOT NULL REFERENCES runs(id),
	seq               INTEGER NOT NULL,
	wild_type_id      TEXT    NOT NULL,
	strategy          TEXT    NOT NULL,
	key               TEXT    NOT NULL,
	predicted_fitness REAL    NOT NULL,
	payload           TEXT    NOT NULL,
	PRIMARY KEY (run_id, seq)
);
CREATE INDEX IF NOT EXISTS candidates_wild_type ON candidates (run_id, wild_type_id);
`

// Run is one stored run header.
type Run struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Stats     engine.Stats `json:"stats"`
}

// Store is a SQLite-backed report store. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	return s.db, nil
}

// SaveReport writes rep and its candidates in one transaction.
//
// Errors: ErrDuplicateRun, ErrClosed, driver errors (wrapped).
func (s *Store) SaveReport(ctx context.Context, rep *engine.Report) (err error) {
	db, err := s.conn()
	if err != nil {
		return err
	}
	cfg, err := json.Marshal(rep.Config)
	if err != nil {
		return fmt.Errorf("store: encode config: %w", err)
	}
	stats, err := json.Marshal(rep.Stats)
	if err != nil {
		return fmt.Errorf("store: encode stats: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, rep.RunID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("store: lookup run: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRun, rep.RunID)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, config, stats) VALUES (?, ?, ?, ?)`,
		rep.RunID, rep.CreatedAt.UTC().Format(timeLayout), string(cfg), string(stats))
	if err != nil {
		return fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO candidates (run_id, seq, wild_type_id, strategy, key, predicted_fitness, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()
	for i, c := range rep.Candidates {
		payload, mErr := json.Marshal(c)
		if mErr != nil {
			err = fmt.Errorf("store: encode candidate %s: %w", c.Key, mErr)
			return err
		}
		_, err = stmt.ExecContext(ctx, rep.RunID, i, c.WildTypeID, string(c.Strategy), c.Key, c.PredictedFitness, string(payload))
		if err != nil {
			return fmt.Errorf("store: insert candidate %s: %w", c.Key, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	return nil
}

// LoadCandidates returns the candidates of runID in stored order.
//
// Errors: ErrRunNotFound, ErrClosed.
func (s *Store) LoadCandidates(ctx context.Context, runID string) ([]candidate.Candidate, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if _, err = s.run(ctx, db, runID); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT payload FROM candidates WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query candidates: %w", err)
	}
	defer rows.Close()

	var out []candidate.Candidate
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("store: scan candidate: %w", err)
		}
		var c candidate.Candidate
		if err = json.Unmarshal([]byte(payload), &c); err != nil {
			return nil, fmt.Errorf("store: decode candidate: %w", err)
		}
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: candidates: %w", err)
	}

	return out, nil
}

// Run returns the header of runID.
func (s *Store) Run(ctx context.Context, runID string) (Run, error) {
	db, err := s.conn()
	if err != nil {
		return Run{}, err
	}

	return s.run(ctx, db, runID)
}

func (s *Store) run(ctx context.Context, db *sql.DB, runID string) (Run, error) {
	var created, stats string
	err := db.QueryRowContext(ctx, `SELECT created_at, stats FROM runs WHERE id = ?`, runID).Scan(&created, &stats)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: query run: %w", err)
	}

	return decodeRun(runID, created, stats)
}

// Runs lists stored runs, newest first; ties are ordered by ID.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, created_at, stats FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var id, created, stats string
		if err = rows.Scan(&id, &created, &stats); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		r, err := decodeRun(id, created, stats)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: runs: %w", err)
	}

	return out, nil
}

func decodeRun(id, created, stats string) (Run, error) {
	at, err := time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("store: run %s created_at: %w", id, err)
	}
	r := Run{ID: id, CreatedAt: at}
	if err = json.Unmarshal([]byte(stats), &r.Stats); err != nil {
		return Run{}, fmt.Errorf("store: run %s stats: %w", id, err)
	}

	return r, nil
}
