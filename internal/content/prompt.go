package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/elan/internal/progress"
)

const systemPrompt = `You are an experienced French teacher writing material for adult learners. Use natural, modern French and accurate IPA. Follow the CEFR level you are given strictly: do not use words or structures above it.`

func buildVocabularyMessage(level progress.Level, count int, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate %d high-frequency French vocabulary words specifically for CEFR level %s. ", count, level))
	b.WriteString(fmt.Sprintf("Include phonetic transcriptions (IPA), accurate %s meanings, and 2 distinct example sentences for each word. ", cfg.GlossLanguage))
	b.WriteString("Context should be daily life.\n")

	b.WriteString(`
Instructions:
1. Every word must be different. Prefer words a learner meets in the first weeks at this level.
2. Each example must contain the word and come with its translation.
3. Return the words in the "words" array.`)

	return b.String()
}

func buildDailyMessage(category Category, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Provide %d authentic French phrases for the situation: %q. ", cfg.SentenceCount, category.Name()))
	b.WriteString(fmt.Sprintf("Use modern spoken French. Include phonetics and %s translations.\n", cfg.GlossLanguage))

	b.WriteString(`
Instructions:
1. Phrases should be short enough to memorise and reuse as-is.
2. Return the phrases in the "sentences" array.`)

	return b.String()
}

func buildGrammarMessage(level progress.Level, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Explain %d essential French grammar rules for %s level. ", cfg.GrammarCount, level))
	b.WriteString(fmt.Sprintf("Explanations must be in %s and very clear. ", cfg.GlossLanguage))
	b.WriteString(fmt.Sprintf("Provide %d examples per rule.\n", cfg.ExampleCount))

	b.WriteString(`
Instructions:
1. Each example sentence is in French and comes with its translation.
2. Return the rules in the "points" array.`)

	return b.String()
}

func buildArticleMessage(level progress.Level, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Write a 250-350 word engaging article or dialogue in French suitable for %s learners. ", level))
	b.WriteString(fmt.Sprintf("Use relevant vocabulary. Provide a %s translation and extract %d key vocabulary terms.\n", cfg.GlossLanguage, cfg.KeywordCount))

	b.WriteString(`
Instructions:
1. Separate paragraphs with a blank line in both the text and the translation.
2. Keywords are French terms that appear in the text.`)

	return b.String()
}

func buildExamMessage(level progress.Level, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a %d-question multiple-choice quiz testing French %s. ", cfg.ExamCount, level))
	b.WriteString("Include grammar, vocabulary, and situational questions. ")
	b.WriteString(fmt.Sprintf("Each question must have exactly %d options and one clear explanation.\n", OptionCount))

	b.WriteString(fmt.Sprintf(`
Instructions:
1. answerIndex is the zero-based position of the single correct option.
2. Write explanations in %s.
3. Do not repeat a question.`, cfg.GlossLanguage))

	return b.String()
}
