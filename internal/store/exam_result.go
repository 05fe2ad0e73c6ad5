package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendExamResult(ctx context.Context, data ExamResultData) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}

	query, args := builder().Insert(ExamResultsTable.Name).
		Columns("seq", "created_at", "attempt_id", "level", "score", "total").
		Values(seq, time.Now().UTC(), data.AttemptID, data.Level, data.Score, data.Total).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save exam result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExamResults(ctx context.Context, opts QueryOpts) ([]ExamResult, error) {
	b := builder()
	sel := b.Select("id", "seq", "created_at", "attempt_id", "level", "score", "total").
		From(b.Table(ExamResultsTable.Name)).
		OrderBy(entsql.Desc("seq"))
	applyQueryOpts(sel, opts)
	if opts.Level != "" {
		sel.Where(entsql.EQ("level", opts.Level))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exam results: %w", err)
	}
	defer rows.Close()

	var results []ExamResult
	for rows.Next() {
		var e ExamResult
		if err := rows.Scan(&e.ID, &e.Seq, &e.CreatedAt, &e.AttemptID, &e.Level, &e.Score, &e.Total); err != nil {
			return nil, fmt.Errorf("scan exam result: %w", err)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}
