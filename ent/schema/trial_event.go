package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrialEvent records one presented tone and the user's response.
type TrialEvent struct {
	ent.Schema
}

func (TrialEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TrialEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("frequency").
			Comment("Tone frequency in Hz"),
		field.String("ear").
			NotEmpty(),
		field.Int("level").
			Comment("Presented level in dB HL"),
		field.Bool("heard"),
		field.Int("trial").
			Comment("1-based index of the response within the session"),
		field.Int64("response_ms").
			Default(0).
			Comment("Milliseconds from tone onset to response"),
	}
}

func (TrialEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("frequency", "ear"),
	}
}
