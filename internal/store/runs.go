package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/refined"
	"github.com/roach88/refined/internal/rules"
	"github.com/roach88/refined/str"
)

// RunID is a UUIDv7 string. Scanning a malformed id from the database fails.
type RunID = refined.Refinement[string, str.UUID[string]]

// NewRunID returns a fresh time-ordered run id.
func NewRunID() RunID {
	return refined.MustRefine[string, str.UUID[string]](uuid.Must(uuid.NewV7()).String())
}

// ErrRunNotFound is returned by ReadRun for an unknown id.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded `check` invocation.
type Run struct {
	ID         RunID             `json:"id"`
	Seq        int64             `json:"seq"`
	Source     string            `json:"source"`
	Schema     string            `json:"schema"`
	Records    int               `json:"records"`
	Digest     string            `json:"digest"`
	Violations []rules.Violation `json:"violations"`
}

// WriteRun records a run and its violations atomically.
// Seq is assigned by the store and written back to run.
func (s *Store) WriteRun(ctx context.Context, run *Run) error {
	if !run.ID.IsRefined() {
		return fmt.Errorf("write run: %w", refined.ErrUnrefined)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return fmt.Errorf("next run seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, source, schema_path, records, digest)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, seq, run.Source, run.Schema, run.Records, run.Digest)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	for i, v := range run.Violations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO violations (run_id, ord, record, field, outcome, message)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, i, v.Record, v.Field, string(v.Outcome), v.Message)
		if err != nil {
			return fmt.Errorf("write violation %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	run.Seq = seq
	s.logger.Debug("recorded run", "id", run.ID.Get(), "seq", seq, "violations", len(run.Violations))
	return nil
}

// ReadRun loads a run and its violations by id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, schema_path, records, digest
		FROM runs WHERE id = ?
	`, id)

	var run Run
	if err := row.Scan(&run.ID, &run.Seq, &run.Source, &run.Schema, &run.Records, &run.Digest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}

	violations, err := s.readViolations(ctx, id)
	if err != nil {
		return Run{}, err
	}
	run.Violations = violations
	return run, nil
}

func (s *Store) readViolations(ctx context.Context, runID string) ([]rules.Violation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record, field, outcome, message
		FROM violations WHERE run_id = ?
		ORDER BY ord ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query violations: %w", err)
	}
	defer rows.Close()

	violations := []rules.Violation{}
	for rows.Next() {
		var v rules.Violation
		var outcome string
		if err := rows.Scan(&v.Record, &v.Field, &outcome, &v.Message); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		v.Outcome = rules.Outcome(outcome)
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate violations: %w", err)
	}
	return violations, nil
}

// RunSummary is a run without its violation rows.
type RunSummary struct {
	ID         RunID  `json:"id"`
	Seq        int64  `json:"seq"`
	Source     string `json:"source"`
	Schema     string `json:"schema"`
	Records    int    `json:"records"`
	Digest     string `json:"digest"`
	Violations int    `json:"violations"`
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `
		SELECT r.id, r.seq, r.source, r.schema_path, r.records, r.digest,
		       (SELECT COUNT(*) FROM violations v WHERE v.run_id = r.id)
		FROM runs r
		ORDER BY r.seq DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Seq, &r.Source, &r.Schema, &r.Records, &r.Digest, &r.Violations); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
