package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions for the auto-migrator. Kept in the shape ent's codegen
// emits so the migrator can diff them against the live database.
var (
	// RecordsColumns holds named JSON documents such as the progress record.
	RecordsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	RecordsTable = &schema.Table{
		Name:       "records",
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
	}

	// LLMRequestEventsColumns holds one row per provider call.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_created_at", Columns: []*schema.Column{LLMRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LLMRequestEventsColumns[5]}},
		},
	}

	// ExamResultsColumns holds one row per finished exam.
	ExamResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
	}
	ExamResultsTable = &schema.Table{
		Name:       "exam_results",
		Columns:    ExamResultsColumns,
		PrimaryKey: []*schema.Column{ExamResultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "examresult_created_at", Columns: []*schema.Column{ExamResultsColumns[2]}},
			{Name: "examresult_level", Columns: []*schema.Column{ExamResultsColumns[4]}},
		},
	}

	// CountersColumns holds named counters; "journal" numbers the rows of
	// the journal tables above.
	CountersColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt64},
	}
	CountersTable = &schema.Table{
		Name:       "counters",
		Columns:    CountersColumns,
		PrimaryKey: []*schema.Column{CountersColumns[0]},
	}

	// Tables is every table the store manages.
	Tables = []*schema.Table{
		RecordsTable,
		CountersTable,
		LLMRequestEventsTable,
		ExamResultsTable,
	}
)

// migrate creates missing tables and columns.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
