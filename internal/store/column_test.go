package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/roach88/refined/internal/document"
)

func openSource(t *testing.T, stmts ...string) *Store {
	t.Helper()
	s, err := OpenSource(createSourceDB(t, stmts...))
	if err != nil {
		t.Fatalf("OpenSource() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReadColumn(t *testing.T) {
	s := openSource(t,
		`CREATE TABLE "user data" ("full name" TEXT, age INTEGER)`,
		`INSERT INTO "user data" VALUES ('Ada', 36), (NULL, 7), ('Grace', NULL)`,
	)

	var got []document.Value
	var rowids []int64
	err := s.ReadColumn(context.Background(), "user data", "full name", func(rowid int64, v document.Value) error {
		rowids = append(rowids, rowid)
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadColumn() failed: %v", err)
	}

	want := []document.Value{document.String("Ada"), document.Null{}, document.String("Grace")}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
	if rowids[0] != 1 || rowids[2] != 3 {
		t.Errorf("rowids = %v", rowids)
	}
}

func TestReadColumn_Integers(t *testing.T) {
	s := openSource(t,
		`CREATE TABLE t (n INTEGER)`,
		`INSERT INTO t VALUES (-5), (9223372036854775807)`,
	)

	var got []document.Value
	err := s.ReadColumn(context.Background(), "t", "n", func(_ int64, v document.Value) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadColumn() failed: %v", err)
	}
	if got[0] != document.Int(-5) || got[1] != document.Int(9223372036854775807) {
		t.Errorf("got %#v", got)
	}
}

func TestReadColumn_RejectsFloats(t *testing.T) {
	s := openSource(t,
		`CREATE TABLE t (n REAL)`,
		`INSERT INTO t VALUES (1.5)`,
	)

	err := s.ReadColumn(context.Background(), "t", "n", func(int64, document.Value) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "floating point") {
		t.Errorf("ReadColumn() error = %v, want floating point error", err)
	}
}

func TestReadColumn_StopsOnCallbackError(t *testing.T) {
	s := openSource(t,
		`CREATE TABLE t (s TEXT)`,
		`INSERT INTO t VALUES ('a'), ('b'), ('c')`,
	)

	stop := errors.New("stop")
	var calls int
	err := s.ReadColumn(context.Background(), "t", "s", func(int64, document.Value) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("ReadColumn() error = %v, want stop", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestReadColumn_UnknownTable(t *testing.T) {
	s := openSource(t, `CREATE TABLE t (s TEXT)`)

	err := s.ReadColumn(context.Background(), "missing", "s", func(int64, document.Value) error { return nil })
	if err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent(`a"b`); got != `"a""b"` {
		t.Errorf("quoteIdent = %s", got)
	}
}
