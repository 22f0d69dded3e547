package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/roach88/refined/internal/rules"
)

// createTestStore creates a new run log in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with the given violations.
func createTestRun(source string, violations ...rules.Violation) *Run {
	return &Run{
		ID:         NewRunID(),
		Source:     source,
		Schema:     "schema.cue",
		Records:    3,
		Digest:     "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		Violations: violations,
	}
}

// createSourceDB writes a plain (rollback journal) source database using the given statements and
// returns its path.
func createSourceDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	defer db.Close()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}
