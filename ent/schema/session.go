package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session maps an opaque bearer token to a user. Rows are written by the
// external session issuer; this service only reads them.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			Unique().
			Immutable().
			Sensitive().
			Comment("Opaque session token presented by the browser"),
		field.String("user_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Comment("Zero means no expiry"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token"),
		index.Fields("user_id"),
	}
}
