package content

// Config holds content generation settings.
type Config struct {
	VocabularyCount int     `yaml:"vocabulary_count"`
	SentenceCount   int     `yaml:"sentence_count"`
	GrammarCount    int     `yaml:"grammar_count"`
	ExampleCount    int     `yaml:"example_count"`
	ExamCount       int     `yaml:"exam_count"`
	KeywordCount    int     `yaml:"keyword_count"`
	GlossLanguage   string  `yaml:"gloss_language"` // language of meanings and translations
	MaxTokens       int     `yaml:"max_tokens"`
	Temperature     float64 `yaml:"temperature"`
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		VocabularyCount: 8,
		SentenceCount:   8,
		GrammarCount:    3,
		ExampleCount:    3,
		ExamCount:       10,
		KeywordCount:    5,
		GlossLanguage:   "Chinese",
		MaxTokens:       4096,
		Temperature:     0.7,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.VocabularyCount <= 0 {
		c.VocabularyCount = d.VocabularyCount
	}
	if c.SentenceCount <= 0 {
		c.SentenceCount = d.SentenceCount
	}
	if c.GrammarCount <= 0 {
		c.GrammarCount = d.GrammarCount
	}
	if c.ExampleCount <= 0 {
		c.ExampleCount = d.ExampleCount
	}
	if c.ExamCount <= 0 {
		c.ExamCount = d.ExamCount
	}
	if c.KeywordCount <= 0 {
		c.KeywordCount = d.KeywordCount
	}
	if c.GlossLanguage == "" {
		c.GlossLanguage = d.GlossLanguage
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	return c
}
