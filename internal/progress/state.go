package progress

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DefaultState returns empty progress at level A1.
func DefaultState() State {
	return State{
		Vocabulary:     []VocabularyWord{},
		StrengthenSet:  []string{},
		WrongWords:     []string{},
		CompletedExams: []string{},
		CurrentLevel:   LevelA1,
	}
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (s State) Clone() State {
	out := State{
		Vocabulary:     make([]VocabularyWord, len(s.Vocabulary)),
		StrengthenSet:  slices.Clone(s.StrengthenSet),
		WrongWords:     slices.Clone(s.WrongWords),
		CompletedExams: slices.Clone(s.CompletedExams),
		CurrentLevel:   s.CurrentLevel,
	}
	for i, w := range s.Vocabulary {
		w.Examples = slices.Clone(w.Examples)
		out.Vocabulary[i] = w
	}
	if out.StrengthenSet == nil {
		out.StrengthenSet = []string{}
	}
	if out.WrongWords == nil {
		out.WrongWords = []string{}
	}
	if out.CompletedExams == nil {
		out.CompletedExams = []string{}
	}
	return out
}

// HasWord reports whether a word with id is in the vocabulary.
func (s State) HasWord(id string) bool {
	for _, w := range s.Vocabulary {
		if w.ID == id {
			return true
		}
	}
	return false
}

// IsStrengthened reports whether id is in the strengthen set.
func (s State) IsStrengthened(id string) bool {
	return slices.Contains(s.StrengthenSet, id)
}

// MergeVocabulary appends the words of batch whose ids are not yet known,
// keeping batch order. Existing entries are never overwritten and a repeated
// id inside batch keeps its first occurrence.
func MergeVocabulary(s State, batch []VocabularyWord) State {
	out := s.Clone()
	seen := make(map[string]struct{}, len(out.Vocabulary)+len(batch))
	for _, w := range out.Vocabulary {
		seen[w.ID] = struct{}{}
	}
	for _, w := range batch {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		w.Examples = slices.Clone(w.Examples)
		out.Vocabulary = append(out.Vocabulary, w)
	}
	return out
}

// MarkForReinforcement adds id to the strengthen set. Marking an id twice
// is a no-op. Ids missing from the vocabulary are rejected.
func MarkForReinforcement(s State, id string) (State, error) {
	if !s.HasWord(id) {
		return s, fmt.Errorf("%w: %q", ErrUnknownWord, id)
	}
	out := s.Clone()
	if !out.IsStrengthened(id) {
		out.StrengthenSet = append(out.StrengthenSet, id)
	}
	return out, nil
}

// WithLevel replaces the current level. Vocabulary and the strengthen set
// pass through untouched.
func WithLevel(s State, level Level) (State, error) {
	if !level.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	out := s.Clone()
	out.CurrentLevel = level
	return out, nil
}

// DictationPool returns the vocabulary words whose ids are in the
// strengthen set, in vocabulary order.
func DictationPool(s State) []VocabularyWord {
	var pool []VocabularyWord
	for _, w := range s.Vocabulary {
		if s.IsStrengthened(w.ID) {
			pool = append(pool, w)
		}
	}
	return pool
}

// Decode parses a persisted record. Missing fields default, unknown fields
// are ignored, and an invalid level falls back to A1. A parse failure
// returns the default state together with the error.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState(), fmt.Errorf("decode progress: %w", err)
	}
	return normalize(s), nil
}

// Encode serializes the state for persistence.
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(s.Clone())
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return data, nil
}

func normalize(s State) State {
	out := DefaultState()
	out.Vocabulary = MergeVocabulary(out, s.Vocabulary).Vocabulary
	out.StrengthenSet = dedupIDs(s.StrengthenSet)
	out.WrongWords = dedupIDs(s.WrongWords)
	out.CompletedExams = dedupIDs(s.CompletedExams)
	if s.CurrentLevel.Valid() {
		out.CurrentLevel = s.CurrentLevel
	}
	return out
}

func dedupIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
