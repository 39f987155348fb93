// Package session runs one screening test end to end: it feeds responses to
// the staircase engine, forwards the engine's instructions to the stimulus
// controller, and scores and persists the finished record.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/staircase"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

// Deps are the collaborators a session needs. Events may be nil.
type Deps struct {
	Device   stimulus.Device
	Records  store.RecordRepo
	Events   store.EventRepo
	Identity identity.Provider
	Logger   *zap.Logger
}

// Config tunes a session.
type Config struct {
	// StartLevel defaults to audiometry.DefaultStartLevel when nil.
	StartLevel   *audiometry.Level
	Pacing       time.Duration
	ToneDuration time.Duration

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Outcome is the result of Start or Respond.
type Outcome struct {
	Step staircase.Step

	// Summary is set when the run finished.
	Summary *scoring.Summary

	// PersistErr is set when the finished record could not be saved. The
	// record and summary are still valid.
	PersistErr error
}

// Finished reports whether the outcome closed the run.
func (o Outcome) Finished() bool {
	return o.Step.State == staircase.Finished
}

// Session is a single screening run. Its methods may be called from
// different goroutines; calls are serialized.
type Session struct {
	deps   Deps
	cfg    Config
	id     string
	logger *zap.Logger

	mu          sync.Mutex
	userID      string
	engine      *staircase.Engine
	ctrl        *stimulus.Controller
	presentedAt time.Time
	summary     *scoring.Summary

	// live mirrors ctrl for Cancel, which must reach the controller
	// without waiting on mu.
	live atomic.Pointer[stimulus.Controller]
}

// New creates an idle session.
func New(deps Deps, cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.StartLevel == nil || !cfg.StartLevel.Valid() {
		lvl := audiometry.DefaultStartLevel
		cfg.StartLevel = &lvl
	}
	if cfg.ToneDuration <= 0 {
		cfg.ToneDuration = stimulus.DefaultToneDuration
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()
	return &Session{
		deps:   deps,
		cfg:    cfg,
		id:     id,
		logger: logger.With(zap.String("session_id", id)),
	}
}

// ID returns the session identifier used in the event log.
func (s *Session) ID() string {
	return s.id
}

// UserID returns the user resolved by Start.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// ErrUsed is returned by Start on a session whose run already finished or
// was cancelled. Each run needs a new Session.
var ErrUsed = errors.New("session already used, start a new one")

// Start resolves the user, acquires the audio device and presents the
// first tone. If the first tone cannot be played the run is still started
// and the error is returned; Replay retries it.
func (s *Session) Start(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine != nil {
		state := s.engine.State()
		if state == staircase.Testing {
			return Outcome{Step: staircase.Step{State: state}}, staircase.ErrNotIdle
		}
		return Outcome{Step: staircase.Step{State: state}}, ErrUsed
	}

	userID, err := s.deps.Identity.CurrentUser(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve user: %w", err)
	}

	em, err := s.deps.Device.Open(ctx)
	if err != nil {
		if !errors.Is(err, stimulus.ErrAudio) {
			err = &stimulus.ErrAudioUnavailable{Err: err}
		}
		s.logger.Warn("open audio device failed", zap.Error(err))
		s.appendSession(ctx, store.ActionAudioFailed, err.Error())
		return Outcome{}, err
	}

	s.userID = userID
	s.ctrl = stimulus.NewController(em,
		stimulus.WithPacing(s.cfg.Pacing),
		stimulus.WithToneDuration(s.cfg.ToneDuration),
		stimulus.WithLogger(s.logger))
	s.live.Store(s.ctrl)
	s.engine = staircase.New(
		staircase.WithStartLevel(*s.cfg.StartLevel),
		staircase.WithOwner(userID),
		staircase.WithClock(s.cfg.Clock))

	step, err := s.engine.Start()
	if err != nil {
		return Outcome{Step: step}, err
	}
	s.logger.Info("session started", zap.String("user_id", userID))
	s.appendSession(ctx, store.ActionStart, "")

	return Outcome{Step: step}, s.forward(ctx, step)
}

// Respond submits the user's answer for the current tone. The engine steps
// at once, but Respond returns only after the next tone is presented, so it
// blocks for the configured pacing delay. Cancel does not wait for it.
func (s *Session) Respond(ctx context.Context, heard bool) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		s.logger.Debug("response ignored: session not started")
		return Outcome{Step: staircase.Step{State: staircase.Idle}}, nil
	}

	cur, active := s.engine.Cursor()
	step := s.engine.SubmitResponse(heard)
	if !active {
		s.logger.Debug("response ignored", zap.String("state", step.State.String()))
		return Outcome{Step: step}, nil
	}
	s.appendTrial(ctx, cur, heard)

	if step.Record == nil {
		return Outcome{Step: step}, s.forward(ctx, step)
	}

	// Finished: silence, score, persist, release.
	if err := s.ctrl.Stop(); err != nil {
		s.logger.Warn("stop stimulus failed", zap.Error(err))
	}
	summary := scoring.Score(*step.Record)
	s.summary = &summary
	out := Outcome{Step: step, Summary: &summary}

	if err := s.deps.Records.Save(ctx, *step.Record); err != nil {
		out.PersistErr = fmt.Errorf("persist record %s: %w", step.Record.ID(), err)
		s.logger.Warn("persist record failed", zap.String("record_id", step.Record.ID()), zap.Error(err))
		s.appendSession(ctx, store.ActionPersistFailed, err.Error())
	}
	s.logger.Info("session finished",
		zap.String("record_id", step.Record.ID()),
		zap.String("right_band", summary.Right.Band.String()),
		zap.String("left_band", summary.Left.Band.String()))
	s.appendSessionRecord(ctx, store.ActionFinish, step.Record.ID())
	s.releaseLocked()
	return out, nil
}

// Replay presents the current tone again, e.g. after an audio failure.
func (s *Session) Replay(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return nil
	}
	cur, ok := s.engine.Cursor()
	if !ok {
		return nil
	}
	return s.play(ctx, cur)
}

// Cancel abandons the run. Partial thresholds are discarded and never
// persisted.
func (s *Session) Cancel(ctx context.Context) error {
	// Stop first so a Play waiting out its pacing delay returns and
	// releases the lock.
	if ctrl := s.live.Load(); ctrl != nil {
		_ = ctrl.Stop()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil || s.engine.State() != staircase.Testing {
		return nil
	}
	done, _ := s.engine.Progress()
	trials := len(s.engine.Trials())
	s.engine.Cancel()
	s.logger.Info("session cancelled", zap.Int("trials", trials), zap.Int("completed_pairs", done))
	if s.deps.Events != nil {
		if err := s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      s.id,
			UserID:         s.userID,
			Action:         store.ActionCancel,
			Trials:         trials,
			CompletedPairs: done,
		}); err != nil {
			s.logger.Warn("append session event failed", zap.Error(err))
		}
	}
	return s.releaseLocked()
}

// Close releases the audio device if the session still holds it.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseLocked()
}

// State returns the engine state.
func (s *Session) State() staircase.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return staircase.Idle
	}
	return s.engine.State()
}

// Cursor returns the coordinate being tested.
func (s *Session) Cursor() (audiometry.Coordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return audiometry.Coordinate{}, false
	}
	return s.engine.Cursor()
}

// Progress reports completed and total sub-tests.
func (s *Session) Progress() (done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return 0, audiometry.TotalPairs()
	}
	return s.engine.Progress()
}

// Result returns the finished record and its summary.
func (s *Session) Result() (audiometry.Record, scoring.Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil || s.summary == nil {
		return audiometry.Record{}, scoring.Summary{}, false
	}
	rec, ok := s.engine.Record()
	return rec, *s.summary, ok
}

func (s *Session) forward(ctx context.Context, step staircase.Step) error {
	switch step.Instruction.Kind {
	case staircase.Play:
		return s.play(ctx, step.Instruction.Coordinate)
	case staircase.Stop:
		if s.ctrl != nil {
			return s.ctrl.Stop()
		}
	}
	return nil
}

func (s *Session) play(ctx context.Context, c audiometry.Coordinate) error {
	if s.ctrl == nil {
		return &stimulus.ErrAudioUnavailable{Err: errors.New("audio device released")}
	}
	err := s.ctrl.Play(ctx, c)
	switch {
	case err == nil:
		s.presentedAt = s.cfg.Clock()
		return nil
	case errors.Is(err, stimulus.ErrSuperseded):
		return nil
	case errors.Is(err, stimulus.ErrAudio):
		s.logger.Warn("play tone failed",
			zap.Int("frequency_hz", int(c.Frequency())),
			zap.String("ear", c.Ear.String()),
			zap.Int("level_db", c.Level.DB()),
			zap.Error(err))
		s.appendSession(ctx, store.ActionAudioFailed, err.Error())
	}
	return err
}

func (s *Session) releaseLocked() error {
	if s.ctrl == nil {
		return nil
	}
	err := s.ctrl.Close()
	s.ctrl = nil
	s.live.Store(nil)
	if err != nil {
		s.logger.Warn("release audio device failed", zap.Error(err))
	}
	return err
}

func (s *Session) appendSession(ctx context.Context, action, detail string) {
	s.appendSessionEvent(ctx, action, detail, "")
}

func (s *Session) appendSessionRecord(ctx context.Context, action, recordID string) {
	s.appendSessionEvent(ctx, action, "", recordID)
}

func (s *Session) appendSessionEvent(ctx context.Context, action, detail, recordID string) {
	if s.deps.Events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID: s.id,
		UserID:    s.userID,
		Action:    action,
		RecordID:  recordID,
		Detail:    detail,
	}
	if s.engine != nil {
		data.Trials = len(s.engine.Trials())
		data.CompletedPairs, _ = s.engine.Progress()
	}
	if err := s.deps.Events.AppendSessionEvent(ctx, data); err != nil {
		s.logger.Warn("append session event failed", zap.String("action", action), zap.Error(err))
	}
}

func (s *Session) appendTrial(ctx context.Context, c audiometry.Coordinate, heard bool) {
	if s.deps.Events == nil {
		return
	}
	var rt int64
	if !s.presentedAt.IsZero() {
		rt = s.cfg.Clock().Sub(s.presentedAt).Milliseconds()
	}
	err := s.deps.Events.AppendTrialEvent(ctx, store.TrialEventData{
		SessionID:   s.id,
		FrequencyHz: int(c.Frequency()),
		Ear:         c.Ear.String(),
		LevelDB:     c.Level.DB(),
		Heard:       heard,
		Trial:       len(s.engine.Trials()),
		ResponseMs:  rt,
	})
	if err != nil {
		s.logger.Warn("append trial event failed", zap.Error(err))
	}
}
