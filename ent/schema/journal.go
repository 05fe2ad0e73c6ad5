package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// JournalMixin makes a table part of the journal: rows are append-only and
// numbered from the "journal" counter, so rows of different tables can be
// interleaved in the order they were written.
type JournalMixin struct {
	mixin.Schema
}

func (JournalMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").Unique().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (JournalMixin) Indexes() []ent.Index {
	return []ent.Index{index.Fields("created_at")}
}

// Counter is a named monotonic counter.
type Counter struct {
	ent.Schema
}

func (Counter) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").Unique().Immutable(),
		field.Int64("value").Comment("Last value handed out"),
	}
}
