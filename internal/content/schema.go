package content

import "github.com/abhisek/elan/internal/llm"

func exampleItems(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence":    map[string]any{"type": "string", "description": "Example sentence in French"},
				"translation": map[string]any{"type": "string", "description": "Translation of the sentence"},
			},
			"required":             []any{"sentence", "translation"},
			"additionalProperties": false,
		},
	}
}

// VocabularySchema defines the JSON schema for a vocabulary batch.
var VocabularySchema = &llm.Schema{
	Name:        "vocabulary-batch",
	Description: "A batch of French vocabulary words with phonetics, meanings, and examples",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":     map[string]any{"type": "string", "description": "The French word, with article for nouns if natural"},
						"phonetic": map[string]any{"type": "string", "description": "IPA transcription"},
						"meaning":  map[string]any{"type": "string", "description": "Meaning in the gloss language"},
						"examples": exampleItems("Two distinct example sentences"),
					},
					"required":             []any{"word", "phonetic", "meaning", "examples"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}

// DailySentencesSchema defines the JSON schema for situational phrases.
var DailySentencesSchema = &llm.Schema{
	Name:        "daily-sentences",
	Description: "Authentic spoken French phrases for an everyday situation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sentence": map[string]any{"type": "string"},
						"phonetic": map[string]any{"type": "string"},
						"meaning":  map[string]any{"type": "string"},
					},
					"required":             []any{"sentence", "phonetic", "meaning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}

// GrammarSchema defines the JSON schema for grammar explanations.
var GrammarSchema = &llm.Schema{
	Name:        "grammar-points",
	Description: "Essential French grammar rules with explanations and examples",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "description": "Short name of the rule"},
						"explanation": map[string]any{"type": "string", "description": "Clear explanation in the gloss language"},
						"examples":    exampleItems("Examples applying the rule"),
					},
					"required":             []any{"title", "explanation", "examples"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"points"},
		"additionalProperties": false,
	},
}

// ArticleSchema defines the JSON schema for a reading passage.
var ArticleSchema = &llm.Schema{
	Name:        "reading-article",
	Description: "A French article or dialogue with translation and key vocabulary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"content":     map[string]any{"type": "string", "description": "The French text"},
			"translation": map[string]any{"type": "string", "description": "Full translation of the text"},
			"keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key vocabulary terms from the text",
			},
		},
		"required":             []any{"title", "content", "translation", "keywords"},
		"additionalProperties": false,
	},
}

// ExamSchema defines the JSON schema for a multiple-choice quiz.
var ExamSchema = &llm.Schema{
	Name:        "exam-quiz",
	Description: "A multiple-choice French quiz with exactly four options per question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": OptionCount,
							"maxItems": OptionCount,
						},
						"answerIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "answerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
