// Package content fetches structured French learning material from an LLM.
package content

import (
	"context"

	"github.com/abhisek/elan/internal/progress"
)

// Purpose labels attached to LLM requests for event logging.
const (
	PurposeVocabulary = "vocabulary"
	PurposeDaily      = "daily-sentences"
	PurposeGrammar    = "grammar"
	PurposeArticle    = "article"
	PurposeExam       = "exam"
)

// Provider supplies learning content. Every call may fail or be slow;
// callers decide what to do with an error.
type Provider interface {
	Vocabulary(ctx context.Context, level progress.Level, count int) ([]WordEntry, error)
	DailySentences(ctx context.Context, category Category) ([]DailySentence, error)
	Grammar(ctx context.Context, level progress.Level) ([]GrammarPoint, error)
	Article(ctx context.Context, level progress.Level) (*Article, error)
	Exam(ctx context.Context, level progress.Level) ([]ExamQuestion, error)
}

// WordEntry is a vocabulary item before it is given a stable id.
type WordEntry struct {
	Word     string             `json:"word"`
	Phonetic string             `json:"phonetic"`
	Meaning  string             `json:"meaning"`
	Examples []progress.Example `json:"examples"`
}

// DailySentence is a phrase for an everyday situation.
type DailySentence struct {
	Sentence string `json:"sentence"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"meaning"`
}

// GrammarPoint is one explained rule with examples.
type GrammarPoint struct {
	Title       string             `json:"title"`
	Explanation string             `json:"explanation"`
	Examples    []progress.Example `json:"examples"`
}

// Article is a reading passage with its translation.
type Article struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Translation string   `json:"translation"`
	Keywords    []string `json:"keywords"`
}

// ExamQuestion is a four-option multiple-choice question.
type ExamQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
}

// OptionCount is the number of options every exam question carries.
const OptionCount = 4

// Valid reports whether the question can be shown and scored.
func (q ExamQuestion) Valid() bool {
	return q.Question != "" &&
		len(q.Options) == OptionCount &&
		q.AnswerIndex >= 0 && q.AnswerIndex < OptionCount
}
