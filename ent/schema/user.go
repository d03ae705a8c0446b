package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User mirrors the externally-owned user record: an opaque identifier
// plus the personalization preferences the tutor reads. Account creation
// and the rest of the user lifecycle live outside this service.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Opaque user identifier issued by the external auth system"),
		field.String("learning_style").
			Default("").
			Comment("Free-text preference, e.g. visual, auditory"),
		field.String("difficulty_preference").
			Default("").
			Comment("Preferred difficulty, e.g. moderate, advanced"),
		field.JSON("interests", []string{}).
			Optional().
			Comment("Topics the user cares about"),
	}
}
