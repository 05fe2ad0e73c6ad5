package modules

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/store"
)

// ExamRecorder stores finished exams.
type ExamRecorder interface {
	AppendExamResult(ctx context.Context, data store.ExamResultData) error
}

// Exam runs one multiple-choice quiz at a time.
type Exam struct {
	fetcher[[]content.ExamQuestion]

	provider content.Provider
	store    *progress.Store
	recorder ExamRecorder

	level     progress.Level
	attemptID string
	index     int
	score     int
	choice    int
	finished  bool
	started   time.Time
}

// NewExam creates the exam controller. recorder may be nil.
func NewExam(provider content.Provider, store *progress.Store, recorder ExamRecorder, log *logger.Logger) *Exam {
	return &Exam{
		fetcher:  newFetcher[[]content.ExamQuestion]("exam", log),
		provider: provider,
		store:    store,
		recorder: recorder,
		choice:   -1,
	}
}

// Load fetches a fresh quiz for the store's level and resets all counters.
func (e *Exam) Load(ctx context.Context) Task[[]content.ExamQuestion] {
	provider, level := e.provider, e.store.Level()
	e.level = level
	e.reset()
	return e.start(ctx, func(ctx context.Context) ([]content.ExamQuestion, error) {
		return provider.Exam(ctx, level)
	})
}

// Restart is Load under the name of the summary action.
func (e *Exam) Restart(ctx context.Context) Task[[]content.ExamQuestion] {
	return e.Load(ctx)
}

func (e *Exam) reset() {
	e.attemptID = uuid.NewString()
	e.index = 0
	e.score = 0
	e.choice = -1
	e.finished = false
}

// Apply installs a completed fetch.
func (e *Exam) Apply(r Loaded[[]content.ExamQuestion]) bool {
	if !e.finish(r) {
		return false
	}
	e.started = time.Now()
	return true
}

// Questions returns the quiz.
func (e *Exam) Questions() []content.ExamQuestion {
	return e.value
}

// Current returns the question being answered.
func (e *Exam) Current() (content.ExamQuestion, bool) {
	if e.finished || e.index >= len(e.value) {
		return content.ExamQuestion{}, false
	}
	return e.value[e.index], true
}

// Select registers option i for the current question. Only the first
// selection counts; later ones are ignored and report false.
func (e *Exam) Select(i int) bool {
	q, ok := e.Current()
	if !ok || e.choice >= 0 || i < 0 || i >= len(q.Options) {
		return false
	}
	e.choice = i
	if i == q.AnswerIndex {
		e.score++
	}
	return true
}

// Answered reports whether the current question has a selection, which
// also reveals its explanation.
func (e *Exam) Answered() bool {
	return e.choice >= 0
}

// Choice returns the selected option, or -1.
func (e *Exam) Choice() int {
	return e.choice
}

// Next moves to the following question once the current one is answered.
// After the last question the exam finishes and is recorded.
func (e *Exam) Next(ctx context.Context) bool {
	if e.finished || e.choice < 0 {
		return false
	}
	e.choice = -1
	if e.index+1 < len(e.value) {
		e.index++
		return true
	}
	e.finished = true
	e.record(ctx)
	return true
}

func (e *Exam) record(ctx context.Context) {
	if e.recorder == nil {
		return
	}
	data := store.ExamResultData{
		AttemptID: e.attemptID,
		Level:     string(e.level),
		Score:     e.score,
		Total:     e.Total(),
	}
	if err := e.recorder.AppendExamResult(ctx, data); err != nil {
		e.log.Warn("record exam result", "attempt_id", e.attemptID, "error", err)
		return
	}
	e.log.Info("exam finished",
		"attempt_id", e.attemptID,
		"level", e.level,
		"score", e.score,
		"total", e.Total(),
		"duration", time.Since(e.started).Round(time.Second).String(),
	)
}

// Index returns the zero-based position of the current question.
func (e *Exam) Index() int {
	return e.index
}

// Score returns the number of correct selections so far.
func (e *Exam) Score() int {
	return e.score
}

// Total returns the number of questions.
func (e *Exam) Total() int {
	return len(e.value)
}

// Finished reports whether the summary is showing.
func (e *Exam) Finished() bool {
	return e.finished
}

// Level returns the level of the current quiz.
func (e *Exam) Level() progress.Level {
	return e.level
}

// AttemptID identifies the current quiz attempt.
func (e *Exam) AttemptID() string {
	return e.attemptID
}
