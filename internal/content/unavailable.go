package content

import (
	"context"
	"errors"

	"github.com/abhisek/elan/internal/progress"
)

// ErrUnavailable is returned by Unavailable for every request.
var ErrUnavailable = errors.New("content: no LLM provider configured")

// Unavailable is the Provider used when no LLM is configured. Every call
// fails, so screens settle into their empty state.
type Unavailable struct{}

var _ Provider = Unavailable{}

func (Unavailable) Vocabulary(context.Context, progress.Level, int) ([]WordEntry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) DailySentences(context.Context, Category) ([]DailySentence, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Grammar(context.Context, progress.Level) ([]GrammarPoint, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Article(context.Context, progress.Level) (*Article, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Exam(context.Context, progress.Level) ([]ExamQuestion, error) {
	return nil, ErrUnavailable
}
