package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "seq", "created_at", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}

	query, args := builder().Insert(LLMRequestEventsTable.Name).
		Columns(llmEventColumns[1:]...).
		Values(
			seq,
			time.Now().UTC(),
			data.Provider,
			data.Model,
			data.Purpose,
			data.InputTokens,
			data.OutputTokens,
			data.LatencyMs,
			data.Success,
			data.ErrorMessage,
			data.RequestBody,
			data.ResponseBody,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	b := builder()
	sel := b.Select(llmEventColumns...).
		From(b.Table(LLMRequestEventsTable.Name)).
		OrderBy(entsql.Desc("seq"))
	applyQueryOpts(sel, opts)
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	b := builder()
	query, args := b.Select(llmEventColumns...).
		From(b.Table(LLMRequestEventsTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	return r.llmUsageBy(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error) {
	return r.llmUsageBy(ctx, "model")
}

func (r *eventRepo) llmUsageBy(ctx context.Context, column string) ([]LLMUsageStats, error) {
	b := builder()
	query, args := b.Select(
		column,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "in_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "out_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
	).
		From(b.Table(LLMRequestEventsTable.Name)).
		GroupBy(column).
		OrderBy(column).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", column, err)
	}
	defer rows.Close()

	var stats []LLMUsageStats
	for rows.Next() {
		var (
			key        string
			st         LLMUsageStats
			avgLatency float64
		)
		if err := rows.Scan(&key, &st.Calls, &st.InputTokens, &st.OutputTokens, &avgLatency); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		if column == "purpose" {
			st.Purpose = key
		} else {
			st.Model = key
		}
		st.AvgLatencyMs = int64(avgLatency)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	err := row.Scan(
		&e.ID,
		&e.Seq,
		&e.CreatedAt,
		&e.Provider,
		&e.Model,
		&e.Purpose,
		&e.InputTokens,
		&e.OutputTokens,
		&e.LatencyMs,
		&e.Success,
		&e.ErrorMessage,
		&e.RequestBody,
		&e.ResponseBody,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	return &e, nil
}

// applyQueryOpts adds the QueryOpts filters to an event selector.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("seq", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("seq", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", opts.To.UTC()))
	}
}
