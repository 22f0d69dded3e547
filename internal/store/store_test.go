package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/refined/internal/document"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	for _, table := range []string{"runs", "violations"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	tests := []struct {
		name     string
		expected string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"},
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.pragma(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestOpen_Migrations(t *testing.T) {
	s := createTestStore(t)

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("query user_version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, currentSchemaVersion)
	}

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_violations_field'",
	).Scan(&name)
	if err != nil {
		t.Errorf("index not created: %v", err)
	}
}

func TestOpen_MigratesV1Database(t *testing.T) {
	path := createSourceDB(t,
		`CREATE TABLE runs (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL UNIQUE,
			source TEXT NOT NULL,
			schema_path TEXT NOT NULL,
			records INTEGER NOT NULL CHECK (records >= 0)
		)`,
		`INSERT INTO runs VALUES ('0190c2a4-0000-7000-8000-000000000001', 1, 'old.json', 'schema.cue', 2)`,
		`PRAGMA user_version = 1`,
	)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var digest string
	if err := s.db.QueryRow(`SELECT digest FROM runs WHERE seq = 1`).Scan(&digest); err != nil {
		t.Fatalf("select digest: %v", err)
	}
	if digest != "" {
		t.Errorf("digest = %q, want empty for runs recorded before v2", digest)
	}
}

func TestOpenSource_ReadOnly(t *testing.T) {
	path := createSourceDB(t, `CREATE TABLE users (name TEXT)`)

	s, err := OpenSource(path)
	if err != nil {
		t.Fatalf("OpenSource() failed: %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec(`INSERT INTO users (name) VALUES ('x')`); err == nil {
		t.Error("expected write to read-only database to fail")
	}
}

func TestOpenSource_Missing(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Fatal("expected error opening missing database read-only")
	}
}

func TestFileDSN(t *testing.T) {
	dir := t.TempDir()
	got, err := fileDSN(filepath.Join(dir, "a?b#c%d.db"), "mode=ro")
	if err != nil {
		t.Fatalf("fileDSN() failed: %v", err)
	}
	want := "file://" + filepath.ToSlash(dir) + "/a%3Fb%23c%25d.db?mode=ro"
	if got != want {
		t.Errorf("fileDSN() = %q, want %q", got, want)
	}

	rel, err := fileDSN("runs.db", "")
	if err != nil {
		t.Fatalf("fileDSN() failed: %v", err)
	}
	if !strings.HasPrefix(rel, "file:///") || !strings.HasSuffix(rel, "/runs.db") {
		t.Errorf("fileDSN(relative) = %q, want an absolute file URI", rel)
	}
}

func TestOpen_UnusualFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs ?#%.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := s.WriteRun(context.Background(), createTestRun("users.json")); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("run log not created at %q: %v", path, err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if n != 1 {
		t.Errorf("runs = %d, want 1", n)
	}
}

func TestOpenSource_UnusualFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app ?#%.db")
	dsn, err := fileDSN(path, "mode=rwc")
	if err != nil {
		t.Fatalf("fileDSN() failed: %v", err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	for _, stmt := range []string{`CREATE TABLE users (name TEXT)`, `INSERT INTO users VALUES ('Ada')`} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	db.Close()

	src, err := OpenSource(path)
	if err != nil {
		t.Fatalf("OpenSource() failed: %v", err)
	}
	defer src.Close()

	var got []document.Value
	err = src.ReadColumn(context.Background(), "users", "name", func(_ int64, v document.Value) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadColumn() failed: %v", err)
	}
	if len(got) != 1 || got[0] != document.String("Ada") {
		t.Errorf("ReadColumn() = %v, want [Ada]", got)
	}
}

func TestClose_Nil(t *testing.T) {
	var s Store
	if err := s.Close(); err != nil {
		t.Errorf("Close() on zero store = %v", err)
	}
}
