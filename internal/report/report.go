// Package report persists fixture evaluation runs so that results can be
// compared across cost-model changes.
package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/waypath/fixture"
)

// Run summarizes one CLI evaluation.
type Run struct {
	ID        string
	StartedAt time.Time
	Fixtures  int
	Cases     int
	Passed    int
	Failed    int
}

// CaseRecord is one evaluated case within a run.
type CaseRecord struct {
	File     string
	Index    int
	Got      float64
	Expected float64
	Diff     float64
	Pass     bool
}

// Recorder stores a run and its cases.
type Recorder interface {
	Record(ctx context.Context, run Run, cases []CaseRecord) error
}

// NewRun flattens per-file outcomes into a Run and its case records.
// outcomes[i] must belong to files[i].
func NewRun(id string, startedAt time.Time, files []fixture.File, outcomes [][]fixture.Outcome) (Run, []CaseRecord) {
	run := Run{ID: id, StartedAt: startedAt, Fixtures: len(files)}
	var records []CaseRecord
	for i, f := range files {
		if i >= len(outcomes) {
			break
		}
		for _, o := range outcomes[i] {
			records = append(records, CaseRecord{
				File:     f.Path,
				Index:    o.Index,
				Got:      o.Got,
				Expected: o.Expected,
				Diff:     o.Diff,
				Pass:     o.Pass,
			})
			if o.Pass {
				run.Passed++
			} else {
				run.Failed++
			}
		}
	}
	run.Cases = len(records)

	return run, records
}

// NopRecorder discards everything. It is used when no database is configured.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, Run, []CaseRecord) error { return nil }

var (
	_ Recorder = NopRecorder{}
	_ Recorder = (*SQLRecorder)(nil)
)

// SQLRecorder writes runs to PostgreSQL through database/sql.
type SQLRecorder struct {
	DB *sql.DB
}

// NewSQLRecorder wraps db.
func NewSQLRecorder(db *sql.DB) *SQLRecorder {
	return &SQLRecorder{DB: db}
}

// Open connects to databaseURL with the pgx driver and verifies the connection.
// The caller must import github.com/jackc/pgx/v5/stdlib to register the driver.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("report: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: verify postgres connection: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS evaluation_runs (
	id         TEXT PRIMARY KEY,
	started_at TIMESTAMPTZ NOT NULL,
	fixtures   INTEGER NOT NULL,
	cases      INTEGER NOT NULL,
	passed     INTEGER NOT NULL,
	failed     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_cases (
	run_id     TEXT NOT NULL REFERENCES evaluation_runs(id) ON DELETE CASCADE,
	file       TEXT NOT NULL,
	case_index INTEGER NOT NULL,
	got        DOUBLE PRECISION NOT NULL,
	expected   DOUBLE PRECISION NOT NULL,
	diff       DOUBLE PRECISION NOT NULL,
	pass       BOOLEAN NOT NULL,
	PRIMARY KEY (run_id, file, case_index)
);
`

// InitSchema creates the run tables if they do not exist.
func (s *SQLRecorder) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("report: db is nil")
	}
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("report: init schema: %w", err)
	}

	return nil
}

// Record inserts run and cases in a single transaction.
func (s *SQLRecorder) Record(ctx context.Context, run Run, cases []CaseRecord) (err error) {
	if s.DB == nil {
		return errors.New("report: db is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("report: begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO evaluation_runs (id, started_at, fixtures, cases, passed, failed)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.StartedAt, run.Fixtures, run.Cases, run.Passed, run.Failed,
	)
	if err != nil {
		return fmt.Errorf("report: insert run %q: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO evaluation_cases (run_id, file, case_index, got, expected, diff, pass)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	)
	if err != nil {
		return fmt.Errorf("report: prepare case insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cases {
		if _, err = stmt.ExecContext(ctx, run.ID, c.File, c.Index, c.Got, c.Expected, c.Diff, c.Pass); err != nil {
			return fmt.Errorf("report: insert case %s#%d: %w", c.File, c.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("report: commit run %q: %w", run.ID, err)
	}

	return nil
}
