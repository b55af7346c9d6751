package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entry is a single durable key/value record. The app persists each piece
// of local state (session, tokens, check-in flags, journal entries) under
// its own key, with no relationships between them.
type Entry struct {
	ent.Schema
}

func (Entry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Storage key, e.g. \"user\" or \"lastCheckin\""),
		field.Text("value").
			Comment("Raw value; JSON for structured records"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Entry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
