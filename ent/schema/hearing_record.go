package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThresholdEntry is the stored form of one (frequency, ear) result.
type ThresholdEntry struct {
	FrequencyHz int    `json:"frequency_hz"`
	Ear         string `json:"ear"`
	Detected    bool   `json:"detected"`
	LevelDB     int    `json:"level_db,omitempty"`
}

// HearingRecord is a completed screening run. Rows are written once and
// never updated.
type HearingRecord struct {
	ent.Schema
}

func (HearingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned when the run finished"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Opaque owner identifier"),
		field.Time("taken_at").
			Immutable().
			Comment("When the run finished"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.JSON("results", []ThresholdEntry{}).
			Comment("Thresholds in traversal order"),
	}
}

func (HearingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "taken_at"),
	}
}
