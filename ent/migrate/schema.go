// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HearingRecordsColumns holds the columns for the "hearing_records" table.
	HearingRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "results", Type: field.TypeJSON},
	}
	// HearingRecordsTable holds the schema information for the "hearing_records" table.
	HearingRecordsTable = &schema.Table{
		Name:       "hearing_records",
		Columns:    HearingRecordsColumns,
		PrimaryKey: []*schema.Column{HearingRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hearingrecord_user_id_taken_at",
				Unique:  false,
				Columns: []*schema.Column{HearingRecordsColumns[2], HearingRecordsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "trials", Type: field.TypeInt, Default: 0},
		{Name: "completed_pairs", Type: field.TypeInt, Default: 0},
		{Name: "record_id", Type: field.TypeString, Default: ""},
		{Name: "detail", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// TrialEventsColumns holds the columns for the "trial_events" table.
	TrialEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "frequency", Type: field.TypeInt},
		{Name: "ear", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "heard", Type: field.TypeBool},
		{Name: "trial", Type: field.TypeInt},
		{Name: "response_ms", Type: field.TypeInt64, Default: 0},
	}
	// TrialEventsTable holds the schema information for the "trial_events" table.
	TrialEventsTable = &schema.Table{
		Name:       "trial_events",
		Columns:    TrialEventsColumns,
		PrimaryKey: []*schema.Column{TrialEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trialevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TrialEventsColumns[1]},
			},
			{
				Name:    "trialevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TrialEventsColumns[2]},
			},
			{
				Name:    "trialevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TrialEventsColumns[3]},
			},
			{
				Name:    "trialevent_frequency_ear",
				Unique:  false,
				Columns: []*schema.Column{TrialEventsColumns[4], TrialEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HearingRecordsTable,
		LlmRequestEventsTable,
		SessionEventsTable,
		TrialEventsTable,
	}
)

func init() {
}
