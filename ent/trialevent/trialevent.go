// Code generated by ent, DO NOT EDIT.

package trialevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trialevent type in the database.
	Label = "trial_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldEar holds the string denoting the ear field in the database.
	FieldEar = "ear"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldHeard holds the string denoting the heard field in the database.
	FieldHeard = "heard"
	// FieldTrial holds the string denoting the trial field in the database.
	FieldTrial = "trial"
	// FieldResponseMs holds the string denoting the response_ms field in the database.
	FieldResponseMs = "response_ms"
	// Table holds the table name of the trialevent in the database.
	Table = "trial_events"
)

// Columns holds all SQL columns for trialevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldFrequency,
	FieldEar,
	FieldLevel,
	FieldHeard,
	FieldTrial,
	FieldResponseMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// EarValidator is a validator for the "ear" field. It is called by the builders before save.
	EarValidator func(string) error
	// DefaultResponseMs holds the default value on creation for the "response_ms" field.
	DefaultResponseMs int64
)

// OrderOption defines the ordering options for the TrialEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByEar orders the results by the ear field.
func ByEar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEar, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByHeard orders the results by the heard field.
func ByHeard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeard, opts...).ToFunc()
}

// ByTrial orders the results by the trial field.
func ByTrial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrial, opts...).ToFunc()
}

// ByResponseMs orders the results by the response_ms field.
func ByResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMs, opts...).ToFunc()
}
