package modules

import (
	"context"
	"time"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
)

// Vocabulary fetches word batches for the current level and feeds them to
// the progress store.
type Vocabulary struct {
	fetcher[[]progress.VocabularyWord]

	provider content.Provider
	store    *progress.Store
	now      func() time.Time

	level    progress.Level
	selected int
}

// NewVocabulary creates the vocabulary controller.
func NewVocabulary(provider content.Provider, store *progress.Store, log *logger.Logger) *Vocabulary {
	return &Vocabulary{
		fetcher:  newFetcher[[]progress.VocabularyWord]("vocabulary", log),
		provider: provider,
		store:    store,
		now:      time.Now,
		selected: -1,
	}
}

// Load fetches the first batch for the store's current level. A1 starts
// from the built-in catalog without calling the provider.
func (v *Vocabulary) Load(ctx context.Context) Task[[]progress.VocabularyWord] {
	return v.load(ctx, false)
}

// LoadMore fetches an additional batch at the same level.
func (v *Vocabulary) LoadMore(ctx context.Context) Task[[]progress.VocabularyWord] {
	return v.load(ctx, true)
}

func (v *Vocabulary) load(ctx context.Context, more bool) Task[[]progress.VocabularyWord] {
	level := v.store.Level()
	v.level = level
	v.selected = -1

	if level == progress.LevelA1 && !more {
		return v.start(ctx, func(context.Context) ([]progress.VocabularyWord, error) {
			return content.StaticA1(), nil
		})
	}

	provider, now := v.provider, v.now
	return v.start(ctx, func(ctx context.Context) ([]progress.VocabularyWord, error) {
		entries, err := provider.Vocabulary(ctx, level, 0)
		if err != nil {
			return nil, err
		}
		return content.TagBatch(entries, level, now().UnixMilli()), nil
	})
}

// Apply installs a completed batch and merges it into the progress store.
// It reports whether the completion was current.
func (v *Vocabulary) Apply(ctx context.Context, r Loaded[[]progress.VocabularyWord]) bool {
	if !v.finish(r) {
		return false
	}
	if r.Err != nil || len(v.value) == 0 {
		return true
	}
	if _, err := v.store.MergeVocabulary(ctx, v.value); err != nil {
		v.log.Warn("merge vocabulary", "level", v.level, "words", len(v.value), "error", err)
	}
	return true
}

// Words returns the words of the latest batch.
func (v *Vocabulary) Words() []progress.VocabularyWord {
	return v.value
}

// Level returns the level of the latest load.
func (v *Vocabulary) Level() progress.Level {
	return v.level
}

// Select opens the detail view for the i-th word.
func (v *Vocabulary) Select(i int) bool {
	if i < 0 || i >= len(v.value) {
		return false
	}
	v.selected = i
	return true
}

// Selected returns the word in the detail view.
func (v *Vocabulary) Selected() (progress.VocabularyWord, bool) {
	if v.selected < 0 || v.selected >= len(v.value) {
		return progress.VocabularyWord{}, false
	}
	return v.value[v.selected], true
}

// CloseDetail leaves the detail view. Used for "je connais".
func (v *Vocabulary) CloseDetail() {
	v.selected = -1
}

// Strengthen marks the selected word for dictation practice and closes
// the detail view.
func (v *Vocabulary) Strengthen(ctx context.Context) error {
	w, ok := v.Selected()
	if !ok {
		return nil
	}
	v.selected = -1
	if _, err := v.store.MarkForReinforcement(ctx, w.ID); err != nil {
		v.log.Warn("mark for reinforcement", "id", w.ID, "error", err)
		return err
	}
	return nil
}

// IsStrengthened reports whether id is in the reinforcement set.
func (v *Vocabulary) IsStrengthened(id string) bool {
	return v.store.IsStrengthened(id)
}
