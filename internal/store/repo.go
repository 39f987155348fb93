package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/hearwise/internal/audiometry"
)

// ErrNotFound is returned when a record lookup has no match.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RecordRepo persists completed hearing records.
type RecordRepo interface {
	// Save stores a record. Records failing Validate are rejected.
	Save(ctx context.Context, rec audiometry.Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (audiometry.Record, error)

	// LoadHistory returns a user's records, most recent first. A limit of
	// zero or less returns every record.
	LoadHistory(ctx context.Context, userID string, limit int) ([]audiometry.Record, error)
}

// Session event actions.
const (
	ActionStart         = "start"
	ActionFinish        = "finish"
	ActionCancel        = "cancel"
	ActionAudioFailed   = "audio_failed"
	ActionPersistFailed = "persist_failed"
)

// SessionEventData captures a session lifecycle change.
type SessionEventData struct {
	SessionID      string
	UserID         string
	Action         string
	Trials         int
	CompletedPairs int
	RecordID       string
	Detail         string
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// TrialEventData captures one response.
type TrialEventData struct {
	SessionID   string
	FrequencyHz int
	Ear         string
	LevelDB     int
	Heard       bool
	Trial       int
	ResponseMs  int64
}

// TrialEventRecord is a stored trial event.
type TrialEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TrialEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo is the append-only event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendTrialEvent(ctx context.Context, data TrialEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QuerySessionEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]SessionEventRecord, error)
	QueryTrialEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]TrialEventRecord, error)

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
