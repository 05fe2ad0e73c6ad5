package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Record is a named JSON document. The learner progress lives in the
// "elan_state" record.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable().
			Comment("Record key"),
		field.Text("data").
			Comment("JSON document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write"),
	}
}
