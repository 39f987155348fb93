package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/staircase"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

type fakeEmitter struct {
	mu      sync.Mutex
	tones   []stimulus.Tone
	fail    int // number of upcoming Emit calls to fail
	closed  bool
	silence int
}

func (f *fakeEmitter) Emit(_ context.Context, t stimulus.Tone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail > 0 {
		f.fail--
		return errors.New("device unplugged")
	}
	f.tones = append(f.tones, t)
	return nil
}

func (f *fakeEmitter) Silence() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.silence++
	return nil
}

func (f *fakeEmitter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type fakeDevice struct {
	em      *fakeEmitter
	openErr error
	opens   int
}

func (d *fakeDevice) Open(context.Context) (stimulus.Emitter, error) {
	d.opens++
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.em, nil
}

type memRecords struct {
	saved   []audiometry.Record
	saveErr error
}

func (m *memRecords) Save(_ context.Context, rec audiometry.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, rec)
	return nil
}

func (m *memRecords) Get(_ context.Context, id string) (audiometry.Record, error) {
	for _, r := range m.saved {
		if r.ID() == id {
			return r, nil
		}
	}
	return audiometry.Record{}, store.ErrNotFound
}

func (m *memRecords) LoadHistory(context.Context, string, int) ([]audiometry.Record, error) {
	return m.saved, nil
}

// memEvents records appends; query methods come from the embedded nil
// interface and are never called here.
type memEvents struct {
	store.EventRepo
	sessions []store.SessionEventData
	trials   []store.TrialEventData
}

func (m *memEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.sessions = append(m.sessions, d)
	return nil
}

func (m *memEvents) AppendTrialEvent(_ context.Context, d store.TrialEventData) error {
	m.trials = append(m.trials, d)
	return nil
}

func (m *memEvents) actions() []string {
	var out []string
	for _, s := range m.sessions {
		out = append(out, s.Action)
	}
	return out
}

type fixture struct {
	em      *fakeEmitter
	dev     *fakeDevice
	records *memRecords
	events  *memEvents
	sess    *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		em:      &fakeEmitter{},
		records: &memRecords{},
		events:  &memEvents{},
	}
	f.dev = &fakeDevice{em: f.em}
	f.sess = New(Deps{
		Device:   f.dev,
		Records:  f.records,
		Events:   f.events,
		Identity: identity.Static("alice"),
		Logger:   zap.NewNop(),
	}, Config{Clock: func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }})
	return f
}

func runToEnd(t *testing.T, s *Session, heard func(audiometry.Coordinate) bool) Outcome {
	t.Helper()
	ctx := context.Background()
	out, err := s.Start(ctx)
	require.NoError(t, err)
	for i := 0; !out.Finished(); i++ {
		require.Less(t, i, 1000)
		cur, ok := s.Cursor()
		require.True(t, ok)
		out, err = s.Respond(ctx, heard(cur))
		require.NoError(t, err)
	}
	return out
}

func TestFullRunPersistsAndScores(t *testing.T) {
	f := newFixture(t)
	out := runToEnd(t, f.sess, func(c audiometry.Coordinate) bool { return c.Level.DB() >= 20 })

	require.NotNil(t, out.Summary)
	require.NotNil(t, out.Step.Record)
	assert.NoError(t, out.PersistErr)
	assert.Equal(t, scoring.Normal, out.Summary.Right.Band)
	assert.Equal(t, 20.0, out.Summary.Left.Average)

	require.Len(t, f.records.saved, 1)
	assert.Equal(t, "alice", f.records.saved[0].UserID())
	assert.NoError(t, f.records.saved[0].Validate())

	assert.Equal(t, []string{store.ActionStart, store.ActionFinish}, f.events.actions())
	assert.Equal(t, out.Step.Record.ID(), f.events.sessions[1].RecordID)
	assert.Len(t, f.events.trials, 24, "two responses per pair")
	assert.True(t, f.em.closed, "device released on finish")

	rec, sum, ok := f.sess.Result()
	require.True(t, ok)
	assert.Equal(t, out.Step.Record.ID(), rec.ID())
	assert.Equal(t, *out.Summary, sum)
}

func TestStartPlaysFirstTone(t *testing.T) {
	f := newFixture(t)
	out, err := f.sess.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, staircase.Play, out.Step.Instruction.Kind)

	require.Len(t, f.em.tones, 1)
	assert.Equal(t, 250.0, f.em.tones[0].FrequencyHz)
	assert.Equal(t, stimulus.ChannelRight, f.em.tones[0].Channel)
	assert.Equal(t, "alice", f.sess.UserID())

	_, err = f.sess.Start(context.Background())
	assert.ErrorIs(t, err, staircase.ErrNotIdle)
	assert.Equal(t, 1, f.dev.opens)
}

func TestStartDeviceUnavailable(t *testing.T) {
	f := newFixture(t)
	f.dev.openErr = errors.New("no sound card")

	_, err := f.sess.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, stimulus.ErrAudio)
	assert.Equal(t, staircase.Idle, f.sess.State())
	assert.Equal(t, []string{store.ActionAudioFailed}, f.events.actions())

	// The user can retry once audio is back.
	f.dev.openErr = nil
	_, err = f.sess.Start(context.Background())
	assert.NoError(t, err)
}

func TestAudioFailureKeepsEngineStateAndReplayRetries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.sess.Start(ctx)
	require.NoError(t, err)

	f.em.fail = 1
	out, err := f.sess.Respond(ctx, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, stimulus.ErrAudio)
	assert.Equal(t, staircase.Testing, out.Step.State)

	cur, ok := f.sess.Cursor()
	require.True(t, ok)
	assert.Equal(t, 20, cur.Level.DB(), "engine advanced despite audio failure")

	require.NoError(t, f.sess.Replay(ctx))
	require.Len(t, f.em.tones, 2)
	assert.Equal(t, stimulus.Loudness(cur.Level), f.em.tones[1].Loudness)
	assert.Contains(t, f.events.actions(), store.ActionAudioFailed)
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.records.saveErr = errors.New("disk full")

	out := runToEnd(t, f.sess, func(audiometry.Coordinate) bool { return true })

	require.Error(t, out.PersistErr)
	assert.Contains(t, out.PersistErr.Error(), "disk full")
	require.NotNil(t, out.Summary)
	require.NotNil(t, out.Step.Record)
	assert.Equal(t, staircase.Finished, f.sess.State())
	assert.Equal(t, []string{store.ActionStart, store.ActionPersistFailed, store.ActionFinish}, f.events.actions())
}

func TestCancelDiscardsAndReleases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.sess.Start(ctx)
	require.NoError(t, err)
	_, err = f.sess.Respond(ctx, true)
	require.NoError(t, err)

	require.NoError(t, f.sess.Cancel(ctx))

	assert.Equal(t, staircase.Idle, f.sess.State())
	assert.Empty(t, f.records.saved)
	assert.True(t, f.em.closed)
	_, _, ok := f.sess.Result()
	assert.False(t, ok)

	last := f.events.sessions[len(f.events.sessions)-1]
	assert.Equal(t, store.ActionCancel, last.Action)
	assert.Equal(t, 1, last.CompletedPairs)
	assert.Equal(t, 1, last.Trials)

	// Responses after cancel are ignored.
	out, err := f.sess.Respond(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, staircase.None, out.Step.Instruction.Kind)
}

func TestCancelInterruptsPacing(t *testing.T) {
	em := &fakeEmitter{}
	s := New(Deps{
		Device:   &fakeDevice{em: em},
		Records:  &memRecords{},
		Identity: identity.Static("alice"),
	}, Config{Pacing: time.Hour})

	started := make(chan error, 1)
	go func() {
		_, err := s.Start(context.Background())
		started <- err
	}()

	// Stopping the live controller is what Cancel does before taking the
	// lock. Repeat until Start has entered its pacing wait and returned.
	var startErr error
	require.Eventually(t, func() bool {
		if c := s.live.Load(); c != nil {
			_ = c.Stop()
		}
		select {
		case startErr = <-started:
			return true
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, startErr)

	require.NoError(t, s.Cancel(context.Background()))
	assert.Equal(t, staircase.Idle, s.State())
	assert.Empty(t, em.tones)
	assert.True(t, em.closed)
}

func TestRespondBeforeStartIsNoop(t *testing.T) {
	f := newFixture(t)
	out, err := f.sess.Respond(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, staircase.Idle, out.Step.State)
	assert.NoError(t, f.sess.Replay(context.Background()))
	assert.Empty(t, f.events.trials)
}

func TestNoUser(t *testing.T) {
	s := New(Deps{Device: &fakeDevice{em: &fakeEmitter{}}, Identity: identity.Static("")}, Config{})
	_, err := s.Start(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoUser)
}

func TestWithRealStore(t *testing.T) {
	st, err := store.Open("file:session_real?mode=memory&cache=shared")
	require.NoError(t, err)
	defer st.Close()

	s := New(Deps{
		Device:   &fakeDevice{em: &fakeEmitter{}},
		Records:  st.RecordRepo(),
		Events:   st.EventRepo(),
		Identity: identity.Static("bob"),
	}, Config{})
	out := runToEnd(t, s, func(audiometry.Coordinate) bool { return false })
	require.NoError(t, out.PersistErr)
	assert.Equal(t, scoring.Profound, out.Summary.Right.Band)
	assert.Equal(t, scoring.Profound, out.Summary.Left.Band)

	history, err := st.RecordRepo().LoadHistory(context.Background(), "bob", 5)
	require.NoError(t, err)
	require.Len(t, history, 1)

	trials, err := st.EventRepo().QueryTrialEvents(context.Background(), s.ID(), store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, trials, 12*12)
}

func TestStartLevel(t *testing.T) {
	lowest := audiometry.MinLevel
	tests := []struct {
		name   string
		level  *audiometry.Level
		wantDB int
	}{
		{"unset uses default", nil, 10},
		{"explicit lowest level", &lowest, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := &fakeEmitter{}
			s := New(Deps{Device: &fakeDevice{em: em}, Records: &memRecords{}, Identity: identity.Static("alice")},
				Config{StartLevel: tt.level})
			_, err := s.Start(context.Background())
			require.NoError(t, err)

			cur, ok := s.Cursor()
			require.True(t, ok)
			assert.Equal(t, tt.wantDB, cur.Level.DB())
			require.Len(t, em.tones, 1)
			assert.Equal(t, stimulus.Loudness(cur.Level), em.tones[0].Loudness)
		})
	}
}

func TestStartAfterRunEndedIsErrUsed(t *testing.T) {
	ctx := context.Background()

	cancelled := newFixture(t)
	_, err := cancelled.sess.Start(ctx)
	require.NoError(t, err)
	require.NoError(t, cancelled.sess.Cancel(ctx))
	_, err = cancelled.sess.Start(ctx)
	assert.ErrorIs(t, err, ErrUsed)
	assert.NotErrorIs(t, err, staircase.ErrNotIdle)

	finished := newFixture(t)
	runToEnd(t, finished.sess, func(audiometry.Coordinate) bool { return true })
	_, err = finished.sess.Start(ctx)
	assert.ErrorIs(t, err, ErrUsed)
	assert.Equal(t, 1, finished.dev.opens)
}

func TestCancelInterruptsPacedRespond(t *testing.T) {
	em := &fakeEmitter{}
	s := New(Deps{
		Device:   &fakeDevice{em: em},
		Records:  &memRecords{},
		Identity: identity.Static("alice"),
	}, Config{Pacing: time.Hour})

	// supersede stops the live controller until call returns, the same
	// way Cancel gets a paced tone out of the way.
	supersede := func(call func() error) {
		t.Helper()
		done := make(chan error, 1)
		go func() { done <- call() }()
		var err error
		require.Eventually(t, func() bool {
			if c := s.live.Load(); c != nil {
				_ = c.Stop()
			}
			select {
			case err = <-done:
				return true
			default:
				return false
			}
		}, 2*time.Second, 5*time.Millisecond)
		require.NoError(t, err)
	}

	supersede(func() error { _, err := s.Start(context.Background()); return err })
	supersede(func() error { _, err := s.Respond(context.Background(), false); return err })

	cur, ok := s.Cursor()
	require.True(t, ok)
	assert.Equal(t, 20, cur.Level.DB(), "engine stepped before the paced tone")

	require.NoError(t, s.Cancel(context.Background()))
	assert.Equal(t, staircase.Idle, s.State())
	assert.Empty(t, em.tones)
}
