// Code generated by ent, DO NOT EDIT.

package trialevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/hearwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldSessionID, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldFrequency, v))
}

// Ear applies equality check predicate on the "ear" field. It's identical to EarEQ.
func Ear(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldEar, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldLevel, v))
}

// Heard applies equality check predicate on the "heard" field. It's identical to HeardEQ.
func Heard(v bool) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldHeard, v))
}

// Trial applies equality check predicate on the "trial" field. It's identical to TrialEQ.
func Trial(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldTrial, v))
}

// ResponseMs applies equality check predicate on the "response_ms" field. It's identical to ResponseMsEQ.
func ResponseMs(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldResponseMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldFrequency, v))
}

// EarEQ applies the EQ predicate on the "ear" field.
func EarEQ(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldEar, v))
}

// EarNEQ applies the NEQ predicate on the "ear" field.
func EarNEQ(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldEar, v))
}

// EarIn applies the In predicate on the "ear" field.
func EarIn(vs ...string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldEar, vs...))
}

// EarNotIn applies the NotIn predicate on the "ear" field.
func EarNotIn(vs ...string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldEar, vs...))
}

// EarGT applies the GT predicate on the "ear" field.
func EarGT(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldEar, v))
}

// EarGTE applies the GTE predicate on the "ear" field.
func EarGTE(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldEar, v))
}

// EarLT applies the LT predicate on the "ear" field.
func EarLT(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldEar, v))
}

// EarLTE applies the LTE predicate on the "ear" field.
func EarLTE(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldEar, v))
}

// EarContains applies the Contains predicate on the "ear" field.
func EarContains(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldContains(FieldEar, v))
}

// EarHasPrefix applies the HasPrefix predicate on the "ear" field.
func EarHasPrefix(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldHasPrefix(FieldEar, v))
}

// EarHasSuffix applies the HasSuffix predicate on the "ear" field.
func EarHasSuffix(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldHasSuffix(FieldEar, v))
}

// EarEqualFold applies the EqualFold predicate on the "ear" field.
func EarEqualFold(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEqualFold(FieldEar, v))
}

// EarContainsFold applies the ContainsFold predicate on the "ear" field.
func EarContainsFold(v string) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldContainsFold(FieldEar, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldLevel, v))
}

// HeardEQ applies the EQ predicate on the "heard" field.
func HeardEQ(v bool) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldHeard, v))
}

// HeardNEQ applies the NEQ predicate on the "heard" field.
func HeardNEQ(v bool) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldHeard, v))
}

// TrialEQ applies the EQ predicate on the "trial" field.
func TrialEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldTrial, v))
}

// TrialNEQ applies the NEQ predicate on the "trial" field.
func TrialNEQ(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldTrial, v))
}

// TrialIn applies the In predicate on the "trial" field.
func TrialIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldTrial, vs...))
}

// TrialNotIn applies the NotIn predicate on the "trial" field.
func TrialNotIn(vs ...int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldTrial, vs...))
}

// TrialGT applies the GT predicate on the "trial" field.
func TrialGT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldTrial, v))
}

// TrialGTE applies the GTE predicate on the "trial" field.
func TrialGTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldTrial, v))
}

// TrialLT applies the LT predicate on the "trial" field.
func TrialLT(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldTrial, v))
}

// TrialLTE applies the LTE predicate on the "trial" field.
func TrialLTE(v int) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldTrial, v))
}

// ResponseMsEQ applies the EQ predicate on the "response_ms" field.
func ResponseMsEQ(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldEQ(FieldResponseMs, v))
}

// ResponseMsNEQ applies the NEQ predicate on the "response_ms" field.
func ResponseMsNEQ(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNEQ(FieldResponseMs, v))
}

// ResponseMsIn applies the In predicate on the "response_ms" field.
func ResponseMsIn(vs ...int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldIn(FieldResponseMs, vs...))
}

// ResponseMsNotIn applies the NotIn predicate on the "response_ms" field.
func ResponseMsNotIn(vs ...int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldNotIn(FieldResponseMs, vs...))
}

// ResponseMsGT applies the GT predicate on the "response_ms" field.
func ResponseMsGT(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGT(FieldResponseMs, v))
}

// ResponseMsGTE applies the GTE predicate on the "response_ms" field.
func ResponseMsGTE(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldGTE(FieldResponseMs, v))
}

// ResponseMsLT applies the LT predicate on the "response_ms" field.
func ResponseMsLT(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLT(FieldResponseMs, v))
}

// ResponseMsLTE applies the LTE predicate on the "response_ms" field.
func ResponseMsLTE(v int64) predicate.TrialEvent {
	return predicate.TrialEvent(sql.FieldLTE(FieldResponseMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrialEvent) predicate.TrialEvent {
	return predicate.TrialEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrialEvent) predicate.TrialEvent {
	return predicate.TrialEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrialEvent) predicate.TrialEvent {
	return predicate.TrialEvent(sql.NotPredicates(p))
}
