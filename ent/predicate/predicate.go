// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HearingRecord is the predicate function for hearingrecord builders.
type HearingRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// TrialEvent is the predicate function for trialevent builders.
type TrialEvent func(*sql.Selector)
