package store

import (
	"context"
	"time"
)

// QueryOpts filters and pages event queries. Filters that do not apply to
// a table are ignored.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // Seq > After
	Before int64     // Seq < Before
	From   time.Time // CreatedAt >= From
	To     time.Time // CreatedAt <= To

	Purpose string // LLM events only
	Level   string // exam results only
}

// RecordRepo stores named JSON documents.
type RecordRepo interface {
	// Get returns the record's data, or nil if it does not exist.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put creates or replaces the record.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes the record. Deleting a missing record is not an error.
	Delete(ctx context.Context, name string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Seq       int64 // journal order, shared with other journal tables
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls grouped by purpose or model.
type LLMUsageStats struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ExamResultData captures a finished exam.
type ExamResultData struct {
	AttemptID string
	Level     string
	Score     int
	Total     int
}

// ExamResult is a stored exam result.
type ExamResult struct {
	ID        int
	Seq       int64 // journal order, shared with other journal tables
	CreatedAt time.Time
	ExamResultData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates calls per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error)

	// AppendExamResult records a finished exam.
	AppendExamResult(ctx context.Context, data ExamResultData) error

	// QueryExamResults returns exam results, newest first.
	QueryExamResults(ctx context.Context, opts QueryOpts) ([]ExamResult, error)
}
