// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/hearwise/ent/hearingrecord"
	"github.com/abhisek/hearwise/ent/llmrequestevent"
	"github.com/abhisek/hearwise/ent/schema"
	"github.com/abhisek/hearwise/ent/sessionevent"
	"github.com/abhisek/hearwise/ent/trialevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	hearingrecordFields := schema.HearingRecord{}.Fields()
	_ = hearingrecordFields
	// hearingrecordDescRecordID is the schema descriptor for record_id field.
	hearingrecordDescRecordID := hearingrecordFields[0].Descriptor()
	// hearingrecord.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	hearingrecord.RecordIDValidator = hearingrecordDescRecordID.Validators[0].(func(string) error)
	// hearingrecordDescUserID is the schema descriptor for user_id field.
	hearingrecordDescUserID := hearingrecordFields[1].Descriptor()
	// hearingrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	hearingrecord.UserIDValidator = hearingrecordDescUserID.Validators[0].(func(string) error)
	// hearingrecordDescCreatedAt is the schema descriptor for created_at field.
	hearingrecordDescCreatedAt := hearingrecordFields[3].Descriptor()
	// hearingrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	hearingrecord.DefaultCreatedAt = hearingrecordDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultUserID holds the default value on creation for the user_id field.
	sessionevent.DefaultUserID = sessioneventDescUserID.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTrials is the schema descriptor for trials field.
	sessioneventDescTrials := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTrials holds the default value on creation for the trials field.
	sessionevent.DefaultTrials = sessioneventDescTrials.Default.(int)
	// sessioneventDescCompletedPairs is the schema descriptor for completed_pairs field.
	sessioneventDescCompletedPairs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCompletedPairs holds the default value on creation for the completed_pairs field.
	sessionevent.DefaultCompletedPairs = sessioneventDescCompletedPairs.Default.(int)
	// sessioneventDescRecordID is the schema descriptor for record_id field.
	sessioneventDescRecordID := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRecordID holds the default value on creation for the record_id field.
	sessionevent.DefaultRecordID = sessioneventDescRecordID.Default.(string)
	// sessioneventDescDetail is the schema descriptor for detail field.
	sessioneventDescDetail := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDetail holds the default value on creation for the detail field.
	sessionevent.DefaultDetail = sessioneventDescDetail.Default.(string)
	trialeventMixin := schema.TrialEvent{}.Mixin()
	trialeventMixinFields0 := trialeventMixin[0].Fields()
	_ = trialeventMixinFields0
	trialeventFields := schema.TrialEvent{}.Fields()
	_ = trialeventFields
	// trialeventDescTimestamp is the schema descriptor for timestamp field.
	trialeventDescTimestamp := trialeventMixinFields0[1].Descriptor()
	// trialevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	trialevent.DefaultTimestamp = trialeventDescTimestamp.Default.(func() time.Time)
	// trialeventDescSessionID is the schema descriptor for session_id field.
	trialeventDescSessionID := trialeventFields[0].Descriptor()
	// trialevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	trialevent.SessionIDValidator = trialeventDescSessionID.Validators[0].(func(string) error)
	// trialeventDescEar is the schema descriptor for ear field.
	trialeventDescEar := trialeventFields[2].Descriptor()
	// trialevent.EarValidator is a validator for the "ear" field. It is called by the builders before save.
	trialevent.EarValidator = trialeventDescEar.Validators[0].(func(string) error)
	// trialeventDescResponseMs is the schema descriptor for response_ms field.
	trialeventDescResponseMs := trialeventFields[6].Descriptor()
	// trialevent.DefaultResponseMs holds the default value on creation for the response_ms field.
	trialevent.DefaultResponseMs = trialeventDescResponseMs.Default.(int64)
}
