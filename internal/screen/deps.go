package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/modules"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/speech"
	"github.com/abhisek/elan/internal/store"
)

// ExamHistory reads finished exams.
type ExamHistory interface {
	QueryExamResults(ctx context.Context, opts store.QueryOpts) ([]store.ExamResult, error)
}

// Deps carries the services shared by every screen.
type Deps struct {
	Ctx      context.Context
	Progress *progress.Store
	Content  content.Provider
	Speaker  speech.Speaker
	Exams    modules.ExamRecorder // may be nil
	History  ExamHistory          // may be nil
	Log      *logger.Logger

	// ContentReady is false when no LLM provider is configured. Screens
	// still run; fetches simply fail and render as empty.
	ContentReady bool
}

// Context returns d.Ctx, or a background context when unset.
func (d Deps) Context() context.Context {
	if d.Ctx != nil {
		return d.Ctx
	}
	return context.Background()
}

// Logger returns d.Log, or a no-op logger when unset.
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Nop()
}

// Fetch runs a controller task off the event loop. The completion is
// delivered to Update as a modules.Loaded value.
func Fetch[T any](task modules.Task[T]) tea.Cmd {
	return func() tea.Msg {
		return task()
	}
}

// Speak says text without blocking the event loop.
func (d Deps) Speak(text string) tea.Cmd {
	sp := d.Speaker
	if sp == nil || text == "" {
		return nil
	}
	ctx := d.Context()
	return func() tea.Msg {
		sp.Speak(ctx, text)
		return nil
	}
}
