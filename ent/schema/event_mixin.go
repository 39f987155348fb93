package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is shared by the append-only event tables.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	seq := field.Int64("sequence").Unique().Immutable().
		Comment("Position in the log merged across event tables")
	at := field.Time("timestamp").Default(time.Now).Immutable()
	return []ent.Field{seq, at}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{index.Fields("sequence"), index.Fields("timestamp")}
}
