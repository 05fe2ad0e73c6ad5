package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one call to the content provider, kept for
// `elan llm` and cost estimates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{JournalMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("Model that served the call, or the configured one on failure"),
		field.String("purpose").Comment("vocabulary, daily-sentences, grammar, article or exam"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
		field.Text("request_body").Default("").Comment("Transcript of system prompt, prompt and schema"),
		field.Text("response_body").Default("").Comment("Reply, including one that failed validation"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{index.Fields("purpose")}
}
