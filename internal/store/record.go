package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// recordRepo implements RecordRepo over the records table.
type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Get(ctx context.Context, name string) ([]byte, error) {
	b := builder()
	query, args := b.Select("data").
		From(b.Table(RecordsTable.Name)).
		Where(entsql.EQ("name", name)).
		Query()

	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", name, err)
	}
	return []byte(data), nil
}

func (r *recordRepo) Put(ctx context.Context, name string, data []byte) error {
	query, args := builder().Insert(RecordsTable.Name).
		Columns("name", "data", "updated_at").
		Values(name, string(data), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put record %q: %w", name, err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, name string) error {
	query, args := builder().Delete(RecordsTable.Name).
		Where(entsql.EQ("name", name)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete record %q: %w", name, err)
	}
	return nil
}

// RecordPersister adapts a RecordRepo to a single named record, matching the
// Load/Save shape the progress store persists through.
type RecordPersister struct {
	Repo RecordRepo
	Name string
}

func (p RecordPersister) Load(ctx context.Context) ([]byte, error) {
	return p.Repo.Get(ctx, p.Name)
}

func (p RecordPersister) Save(ctx context.Context, data []byte) error {
	return p.Repo.Put(ctx, p.Name, data)
}
