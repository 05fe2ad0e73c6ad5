// Package store keeps elan's data in a single SQLite file: the progress
// record and the journal of LLM calls and exam results.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// pragmas are applied to the one connection the store uses. WAL lets
// `elan llm` read while the app writes.
var pragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

// Store is an open database.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open opens or creates the database at path and brings its tables up to
// date. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if !strings.HasPrefix(path, ":memory:") && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Pragmas are per connection, and an in-memory database lives only as
	// long as its connection.
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db, drv: drv}, nil
}

// DB is the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.drv.Close() }

func (s *Store) RecordRepo() RecordRepo { return &recordRepo{db: s.db} }

func (s *Store) EventRepo() EventRepo { return &eventRepo{db: s.db} }

// DefaultPath is $XDG_DATA_HOME/elan/elan.db, or ~/.local/share/elan/elan.db
// when XDG_DATA_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "elan", "elan.db"), nil
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
