package progress

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a CEFR proficiency tier.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// Levels lists every level in difficulty order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

var (
	// ErrInvalidLevel is returned when a level outside Levels is requested.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrUnknownWord is returned when marking an id that is not in the vocabulary.
	ErrUnknownWord = errors.New("unknown vocabulary id")
)

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	for _, lv := range Levels {
		if l == lv {
			return true
		}
	}
	return false
}

// Index returns the position of l in Levels, or -1.
func (l Level) Index() int {
	for i, lv := range Levels {
		if l == lv {
			return i
		}
	}
	return -1
}

// ParseLevel accepts case-insensitive level names such as "b1".
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Example is a sentence with its translation.
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// VocabularyWord is a single learning item. ID is stable across sessions.
type VocabularyWord struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Phonetic     string    `json:"phonetic"`
	Meaning      string    `json:"meaning"`
	Examples     []Example `json:"examples"`
	Level        Level     `json:"level"`
	Known        bool      `json:"known"`
	IsStrengthen bool      `json:"isStrengthen"`
}

// State is the persisted learner progress aggregate.
type State struct {
	Vocabulary     []VocabularyWord `json:"vocabulary"`
	StrengthenSet  []string         `json:"strengthenSet"`
	WrongWords     []string         `json:"wrongWords"`
	CompletedExams []string         `json:"completedExams"`
	CurrentLevel   Level            `json:"currentLevel"`
}
