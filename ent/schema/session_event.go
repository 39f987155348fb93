package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records test session lifecycle changes.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			Default(""),
		field.String("action").
			NotEmpty().
			Comment("start, finish, cancel, audio_failed or persist_failed"),
		field.Int("trials").
			Default(0).
			Comment("Responses submitted so far"),
		field.Int("completed_pairs").
			Default(0).
			Comment("Frequency/ear sub-tests finished so far"),
		field.String("record_id").
			Default("").
			Comment("Set on finish"),
		field.String("detail").
			Default("").
			Comment("Error text for failure actions"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
