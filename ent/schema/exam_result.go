package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamResult records a finished quick exam.
type ExamResult struct {
	ent.Schema
}

func (ExamResult) Mixin() []ent.Mixin {
	return []ent.Mixin{JournalMixin{}}
}

func (ExamResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			Comment("UUID of the exam attempt"),
		field.String("level").
			Comment("CEFR level the exam was generated for"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Questions in the exam"),
	}
}

func (ExamResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
	}
}
