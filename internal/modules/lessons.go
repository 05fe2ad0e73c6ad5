package modules

import (
	"context"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
)

// Daily fetches situational phrases for a category.
type Daily struct {
	fetcher[[]content.DailySentence]

	provider content.Provider
	category content.Category
}

// NewDaily creates the daily sentences controller on the first category.
func NewDaily(provider content.Provider, log *logger.Logger) *Daily {
	return &Daily{
		fetcher:  newFetcher[[]content.DailySentence]("daily", log),
		provider: provider,
		category: content.Categories[0],
	}
}

// Load fetches phrases for the current category.
func (d *Daily) Load(ctx context.Context) Task[[]content.DailySentence] {
	provider, category := d.provider, d.category
	return d.start(ctx, func(ctx context.Context) ([]content.DailySentence, error) {
		return provider.DailySentences(ctx, category)
	})
}

// SetCategory switches category and re-fetches.
func (d *Daily) SetCategory(ctx context.Context, c content.Category) Task[[]content.DailySentence] {
	d.category = c
	return d.Load(ctx)
}

// Apply installs a completed fetch.
func (d *Daily) Apply(r Loaded[[]content.DailySentence]) bool {
	return d.finish(r)
}

// Category returns the selected category.
func (d *Daily) Category() content.Category {
	return d.category
}

// Sentences returns the fetched phrases.
func (d *Daily) Sentences() []content.DailySentence {
	return d.value
}

// Grammar fetches grammar points for the current level.
type Grammar struct {
	fetcher[[]content.GrammarPoint]

	provider content.Provider
	store    *progress.Store
	level    progress.Level
}

// NewGrammar creates the grammar controller.
func NewGrammar(provider content.Provider, store *progress.Store, log *logger.Logger) *Grammar {
	return &Grammar{
		fetcher:  newFetcher[[]content.GrammarPoint]("grammar", log),
		provider: provider,
		store:    store,
	}
}

// Load fetches grammar points for the store's level.
func (g *Grammar) Load(ctx context.Context) Task[[]content.GrammarPoint] {
	provider, level := g.provider, g.store.Level()
	g.level = level
	return g.start(ctx, func(ctx context.Context) ([]content.GrammarPoint, error) {
		return provider.Grammar(ctx, level)
	})
}

// Apply installs a completed fetch.
func (g *Grammar) Apply(r Loaded[[]content.GrammarPoint]) bool {
	return g.finish(r)
}

// Points returns the fetched grammar points.
func (g *Grammar) Points() []content.GrammarPoint {
	return g.value
}

// Level returns the level of the latest load.
func (g *Grammar) Level() progress.Level {
	return g.level
}

// Reading fetches an article for the current level.
type Reading struct {
	fetcher[*content.Article]

	provider        content.Provider
	store           *progress.Store
	level           progress.Level
	showTranslation bool
}

// NewReading creates the reading controller.
func NewReading(provider content.Provider, store *progress.Store, log *logger.Logger) *Reading {
	return &Reading{
		fetcher:  newFetcher[*content.Article]("reading", log),
		provider: provider,
		store:    store,
	}
}

// Load fetches a new article. Used for "another article" as well.
func (r *Reading) Load(ctx context.Context) Task[*content.Article] {
	provider, level := r.provider, r.store.Level()
	r.level = level
	r.showTranslation = false
	return r.start(ctx, func(ctx context.Context) (*content.Article, error) {
		return provider.Article(ctx, level)
	})
}

// Apply installs a completed fetch.
func (r *Reading) Apply(l Loaded[*content.Article]) bool {
	return r.finish(l)
}

// Article returns the fetched article, or nil.
func (r *Reading) Article() *content.Article {
	return r.value
}

// ToggleTranslation shows or hides the translation.
func (r *Reading) ToggleTranslation() {
	r.showTranslation = !r.showTranslation
}

// ShowTranslation reports whether the translation is visible.
func (r *Reading) ShowTranslation() bool {
	return r.showTranslation
}

// Level returns the level of the latest load.
func (r *Reading) Level() progress.Level {
	return r.level
}
