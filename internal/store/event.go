package store

import (
	"context"
	"database/sql"
	"fmt"
)

// journalCounter numbers the rows of every journal table from one sequence.
const journalCounter = "journal"

// nextValue bumps the named counter and returns its new value. The upsert
// is a single statement, so concurrent writers, including a second elan
// process on the same file, never get the same value.
func nextValue(ctx context.Context, db *sql.DB, name string) (int64, error) {
	var v int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO `+CountersTable.Name+` (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = value + 1
		 RETURNING value`, name,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return v, nil
}

// eventRepo implements EventRepo over the journal tables.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) nextSeq(ctx context.Context) (int64, error) {
	return nextValue(ctx, r.db, journalCounter)
}
