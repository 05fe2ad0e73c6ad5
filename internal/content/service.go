package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/elan/internal/llm"
	"github.com/abhisek/elan/internal/progress"
)

// Service generates learning content with an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

var _ Provider = (*Service)(nil)

// NewService creates a content service. Zero config fields take defaults.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

type vocabularyOutput struct {
	Words []WordEntry `json:"words"`
}

type dailyOutput struct {
	Sentences []DailySentence `json:"sentences"`
}

type grammarOutput struct {
	Points []GrammarPoint `json:"points"`
}

type examOutput struct {
	Questions []ExamQuestion `json:"questions"`
}

// Vocabulary returns up to count new words for level. A non-positive
// count uses the configured batch size.
func (s *Service) Vocabulary(ctx context.Context, level progress.Level, count int) ([]WordEntry, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("vocabulary: %w: %q", progress.ErrInvalidLevel, level)
	}
	if count <= 0 {
		count = s.cfg.VocabularyCount
	}

	var out vocabularyOutput
	msg := buildVocabularyMessage(level, count, s.cfg)
	if err := s.generate(ctx, PurposeVocabulary, msg, VocabularySchema, &out); err != nil {
		return nil, err
	}

	words := make([]WordEntry, 0, len(out.Words))
	for _, w := range out.Words {
		w.Word = strings.TrimSpace(w.Word)
		if w.Word == "" {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}

// DailySentences returns phrases for category.
func (s *Service) DailySentences(ctx context.Context, category Category) ([]DailySentence, error) {
	var out dailyOutput
	if err := s.generate(ctx, PurposeDaily, buildDailyMessage(category, s.cfg), DailySentencesSchema, &out); err != nil {
		return nil, err
	}
	return out.Sentences, nil
}

// Grammar returns explained rules for level.
func (s *Service) Grammar(ctx context.Context, level progress.Level) ([]GrammarPoint, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("grammar: %w: %q", progress.ErrInvalidLevel, level)
	}
	var out grammarOutput
	if err := s.generate(ctx, PurposeGrammar, buildGrammarMessage(level, s.cfg), GrammarSchema, &out); err != nil {
		return nil, err
	}
	return out.Points, nil
}

// Article returns a reading passage for level.
func (s *Service) Article(ctx context.Context, level progress.Level) (*Article, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("article: %w: %q", progress.ErrInvalidLevel, level)
	}
	var out Article
	if err := s.generate(ctx, PurposeArticle, buildArticleMessage(level, s.cfg), ArticleSchema, &out); err != nil {
		return nil, err
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	return &out, nil
}

// Exam returns a quiz for level. Questions that cannot be scored, such
// as an answer index outside the options, are dropped.
func (s *Service) Exam(ctx context.Context, level progress.Level) ([]ExamQuestion, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("exam: %w: %q", progress.ErrInvalidLevel, level)
	}
	var out examOutput
	if err := s.generate(ctx, PurposeExam, buildExamMessage(level, s.cfg), ExamSchema, &out); err != nil {
		return nil, err
	}

	questions := make([]ExamQuestion, 0, len(out.Questions))
	for _, q := range out.Questions {
		if q.Valid() {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("exam: no usable questions in response")
	}
	return questions, nil
}

func (s *Service) generate(ctx context.Context, purpose, prompt string, schema *llm.Schema, out any) error {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", purpose, err)
	}
	if err := resp.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", purpose, err)
	}
	return nil
}
