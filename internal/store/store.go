package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// runLogPragmas configure every run log connection, in order.
var runLogPragmas = []struct {
	name, value string
}{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
}

// migration upgrades a run log to version. Migrations run in order, each in
// its own transaction, and user_version records the last one applied.
type migration struct {
	version int
	stmt    string
}

var migrations = []migration{
	{1, `CREATE INDEX IF NOT EXISTS idx_violations_field ON violations(field)`},
	{2, `ALTER TABLE runs ADD COLUMN digest TEXT NOT NULL DEFAULT ''`},
}

// currentSchemaVersion is the version a freshly opened run log reports.
var currentSchemaVersion = migrations[len(migrations)-1].version

// Store is a SQLite database handle: a run log or an audited source.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Open creates or opens the run log at path, then configures and migrates
// it. Opening an up-to-date run log changes nothing.
func Open(path string, opts ...Option) (*Store, error) {
	dsn, err := fileDSN(path, "")
	if err != nil {
		return nil, err
	}
	s, err := connect(dsn, opts)
	if err != nil {
		return nil, err
	}
	if err := s.prepareRunLog(); err != nil {
		s.db.Close()
		return nil, err
	}
	s.logger.Debug("opened run log", "path", path, "version", currentSchemaVersion)
	return s, nil
}

// OpenSource opens an existing database read-only. No schema is applied.
func OpenSource(path string, opts ...Option) (*Store, error) {
	dsn, err := fileDSN(path, "mode=ro")
	if err != nil {
		return nil, err
	}
	s, err := connect(dsn, opts)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("opened source database", "path", path)
	return s, nil
}

// fileDSN builds an SQLite URI for path. The path is made absolute and
// escaped so that '?', '#' and '%' in file names reach SQLite intact.
func fileDSN(path, query string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve database path: %w", err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: query}
	return u.String(), nil
}

func connect(dsn string, opts []Option) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// One writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) prepareRunLog() error {
	for _, p := range runLogPragmas {
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return fmt.Errorf("set pragma %s: %w", p.name, err)
		}
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return s.migrate()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		s.logger.Debug("migrated run log", "version", m.version)
	}
	return nil
}

// pragma reads the current value of a pragma.
func (s *Store) pragma(name string) (string, error) {
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return "", fmt.Errorf("read pragma %s: %w", name, err)
	}
	return value, nil
}
