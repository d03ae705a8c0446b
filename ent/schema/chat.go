package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chat records one completed exchange: the user's question, the model's
// reply, and the personalization snapshot the reply was generated under.
// Append-only; written best-effort after the response has been sent.
type Chat struct {
	ent.Schema
}

func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at append time"),
		field.String("user_id"),
		field.Text("message").
			Comment("The user's question, verbatim"),
		field.Text("response").
			Comment("The generated reply, verbatim"),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Personalization snapshot at generation time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
