// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/hearwise/ent/trialevent"
)

// TrialEvent is the model entity for the TrialEvent schema.
type TrialEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the log merged across event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Tone frequency in Hz
	Frequency int `json:"frequency,omitempty"`
	// Ear holds the value of the "ear" field.
	Ear string `json:"ear,omitempty"`
	// Presented level in dB HL
	Level int `json:"level,omitempty"`
	// Heard holds the value of the "heard" field.
	Heard bool `json:"heard,omitempty"`
	// 1-based index of the response within the session
	Trial int `json:"trial,omitempty"`
	// Milliseconds from tone onset to response
	ResponseMs   int64 `json:"response_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrialEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trialevent.FieldHeard:
			values[i] = new(sql.NullBool)
		case trialevent.FieldID, trialevent.FieldSequence, trialevent.FieldFrequency, trialevent.FieldLevel, trialevent.FieldTrial, trialevent.FieldResponseMs:
			values[i] = new(sql.NullInt64)
		case trialevent.FieldSessionID, trialevent.FieldEar:
			values[i] = new(sql.NullString)
		case trialevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrialEvent fields.
func (_m *TrialEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trialevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trialevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case trialevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case trialevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case trialevent.FieldFrequency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = int(value.Int64)
			}
		case trialevent.FieldEar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ear", values[i])
			} else if value.Valid {
				_m.Ear = value.String
			}
		case trialevent.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case trialevent.FieldHeard:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field heard", values[i])
			} else if value.Valid {
				_m.Heard = value.Bool
			}
		case trialevent.FieldTrial:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trial", values[i])
			} else if value.Valid {
				_m.Trial = int(value.Int64)
			}
		case trialevent.FieldResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_ms", values[i])
			} else if value.Valid {
				_m.ResponseMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrialEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TrialEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrialEvent.
// Note that you need to call TrialEvent.Unwrap() before calling this method if this TrialEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrialEvent) Update() *TrialEventUpdateOne {
	return NewTrialEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrialEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrialEvent) Unwrap() *TrialEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrialEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrialEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TrialEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Frequency))
	builder.WriteString(", ")
	builder.WriteString("ear=")
	builder.WriteString(_m.Ear)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("heard=")
	builder.WriteString(fmt.Sprintf("%v", _m.Heard))
	builder.WriteString(", ")
	builder.WriteString("trial=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trial))
	builder.WriteString(", ")
	builder.WriteString("response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseMs))
	builder.WriteByte(')')
	return builder.String()
}

// TrialEvents is a parsable slice of TrialEvent.
type TrialEvents []*TrialEvent
