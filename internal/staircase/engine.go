// Package staircase implements the ascending threshold search that drives a
// hearing screening run.
//
// The engine walks every frequency for the right ear, then every frequency
// for the left ear. For each (frequency, ear) pair it presents tones starting
// at the start level and steps one level louder per "not heard" response. The
// first "heard" response fixes the threshold; reaching the loudest level
// without a response records NotDetected.
//
// An Engine has a single owner and is not safe for concurrent use.
package staircase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hearwise/internal/audiometry"
)

// State is the engine lifecycle phase.
type State int

const (
	Idle     State = iota // No run in progress
	Testing               // Presenting tones and collecting responses
	Finished              // Every pair has a threshold; Record is available
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Testing:
		return "testing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// InstructionKind tells the stimulus controller what to do after a step.
type InstructionKind int

const (
	None InstructionKind = iota
	Play
	Stop
)

// Instruction is the engine's request to the stimulus controller.
type Instruction struct {
	Kind       InstructionKind
	Coordinate audiometry.Coordinate
}

// Step is the observable outcome of Start or SubmitResponse.
type Step struct {
	State       State
	Instruction Instruction

	// Completed is set when the step closed a (frequency, ear) sub-test.
	Completed *audiometry.Result

	// Record is set on the step that finished the run.
	Record *audiometry.Record
}

// Trial is one presented tone and the user's answer.
type Trial struct {
	Coordinate audiometry.Coordinate
	Heard      bool
}

// ErrNotIdle is returned by Start when a run is in progress or finished.
var ErrNotIdle = errors.New("staircase: engine is not idle")

// Option configures an Engine.
type Option func(*Engine)

// WithStartLevel sets the level each sub-test begins at.
func WithStartLevel(l audiometry.Level) Option {
	return func(e *Engine) {
		if l.Valid() {
			e.start = l
		}
	}
}

// WithOwner stamps finished records with userID.
func WithOwner(userID string) Option {
	return func(e *Engine) { e.owner = userID }
}

// WithClock overrides the clock used for Record.TakenAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// Engine is the staircase state machine.
type Engine struct {
	start audiometry.Level
	owner string
	now   func() time.Time
	newID func() string

	state   State
	cursor  audiometry.Coordinate
	results []audiometry.Result
	trials  []Trial
	record  *audiometry.Record
}

// New creates an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		start: audiometry.DefaultStartLevel,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartLevel returns the configured start level.
func (e *Engine) StartLevel() audiometry.Level {
	return e.start
}

// Start begins a run at the first frequency, right ear, start level.
func (e *Engine) Start() (Step, error) {
	if e.state != Idle {
		return e.noop(), ErrNotIdle
	}
	e.results = make([]audiometry.Result, 0, audiometry.TotalPairs())
	e.trials = nil
	e.record = nil
	e.cursor = audiometry.Coordinate{FrequencyIndex: 0, Ear: audiometry.Ears[0], Level: e.start}
	e.state = Testing
	return Step{State: Testing, Instruction: Instruction{Kind: Play, Coordinate: e.cursor}}, nil
}

// SubmitResponse applies the user's answer to the tone at the cursor.
// Outside Testing it does nothing and returns a step with no instruction.
func (e *Engine) SubmitResponse(heard bool) Step {
	if e.state != Testing {
		return e.noop()
	}
	e.trials = append(e.trials, Trial{Coordinate: e.cursor, Heard: heard})

	if !heard && e.cursor.Level < audiometry.MaxLevel {
		e.cursor.Level++
		return Step{State: Testing, Instruction: Instruction{Kind: Play, Coordinate: e.cursor}}
	}

	th := audiometry.NotDetected()
	if heard {
		th = audiometry.Heard(e.cursor.Level)
	}
	res := audiometry.Result{
		Frequency: e.cursor.Frequency(),
		Ear:       e.cursor.Ear,
		Threshold: th,
	}
	e.results = append(e.results, res)

	if !e.advance() {
		rec := audiometry.NewRecord(e.newID(), e.owner, e.now(), e.results)
		e.record = &rec
		e.state = Finished
		return Step{
			State:       Finished,
			Instruction: Instruction{Kind: Stop},
			Completed:   &res,
			Record:      &rec,
		}
	}
	return Step{
		State:       Testing,
		Instruction: Instruction{Kind: Play, Coordinate: e.cursor},
		Completed:   &res,
	}
}

// advance moves the cursor to the next sub-test. It returns false when the
// grid is exhausted.
func (e *Engine) advance() bool {
	next := e.cursor
	next.Level = e.start
	next.FrequencyIndex++
	if next.FrequencyIndex >= len(audiometry.Frequencies) {
		earIdx := earIndex(next.Ear) + 1
		if earIdx >= len(audiometry.Ears) {
			return false
		}
		next.FrequencyIndex = 0
		next.Ear = audiometry.Ears[earIdx]
	}
	e.cursor = next
	return true
}

// Cancel abandons a run in progress, discarding every partial threshold.
func (e *Engine) Cancel() {
	if e.state != Testing {
		return
	}
	e.clear()
}

// Reset returns a finished engine to Idle so it can run again.
func (e *Engine) Reset() {
	if e.state != Finished {
		return
	}
	e.clear()
}

func (e *Engine) clear() {
	e.state = Idle
	e.cursor = audiometry.Coordinate{}
	e.results = nil
	e.trials = nil
	e.record = nil
}

func (e *Engine) noop() Step {
	return Step{State: e.state, Instruction: Instruction{Kind: None}}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// Cursor returns the coordinate being presented. ok is false outside Testing.
func (e *Engine) Cursor() (audiometry.Coordinate, bool) {
	if e.state != Testing {
		return audiometry.Coordinate{}, false
	}
	return e.cursor, true
}

// Results returns the thresholds decided so far, in traversal order.
func (e *Engine) Results() []audiometry.Result {
	out := make([]audiometry.Result, len(e.results))
	copy(out, e.results)
	return out
}

// Trials returns every response submitted in the current run.
func (e *Engine) Trials() []Trial {
	out := make([]Trial, len(e.trials))
	copy(out, e.trials)
	return out
}

// Record returns the finished record.
func (e *Engine) Record() (audiometry.Record, bool) {
	if e.record == nil {
		return audiometry.Record{}, false
	}
	return *e.record, true
}

// Progress reports completed and total sub-tests.
func (e *Engine) Progress() (done, total int) {
	return len(e.results), audiometry.TotalPairs()
}

// MaxTrialsPerPair is the most responses a single sub-test can consume.
func (e *Engine) MaxTrialsPerPair() int {
	return int(audiometry.MaxLevel-e.start) + 1
}

func earIndex(ear audiometry.Ear) int {
	for i, v := range audiometry.Ears {
		if v == ear {
			return i
		}
	}
	return 0
}
