package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/results"
	"github.com/abhisek/hearwise/internal/staircase"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

func init() {
	flashFor = time.Millisecond
}

type fakeEmitter struct {
	mu     sync.Mutex
	emits  int
	fail   int
	closed bool
}

func (f *fakeEmitter) Emit(context.Context, stimulus.Tone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail > 0 {
		f.fail--
		return errors.New("device unplugged")
	}
	f.emits++
	return nil
}

func (f *fakeEmitter) Silence() error { return nil }

func (f *fakeEmitter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type fakeDevice struct {
	em      *fakeEmitter
	openErr error
}

func (d *fakeDevice) Open(context.Context) (stimulus.Emitter, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.em, nil
}

type memRecords struct {
	mu    sync.Mutex
	saved []audiometry.Record
}

func (m *memRecords) Save(_ context.Context, rec audiometry.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, rec)
	return nil
}

func (m *memRecords) Get(context.Context, string) (audiometry.Record, error) {
	return audiometry.Record{}, store.ErrNotFound
}

func (m *memRecords) LoadHistory(context.Context, string, int) ([]audiometry.Record, error) {
	return nil, nil
}

type fixture struct {
	em      *fakeEmitter
	dev     *fakeDevice
	records *memRecords
	screen  *SessionScreen
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{em: &fakeEmitter{}, records: &memRecords{}}
	f.dev = &fakeDevice{em: f.em}
	f.screen = New(&env.Env{UserID: "alice", Device: f.dev, Records: f.records})
	return f
}

// pump runs cmd to completion, feeding screen messages back into s and
// returning the navigation messages it produced.
func pump(s *SessionScreen, cmd tea.Cmd) []tea.Msg {
	var nav []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			nav = append(nav, msg)
		default:
			_, next := s.Update(msg)
			queue = append(queue, next)
		}
	}
	return nav
}

func press(s *SessionScreen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		msg = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func (f *fixture) start(t *testing.T) {
	t.Helper()
	nav := pump(f.screen, f.screen.Init())
	require.Empty(t, nav)
	require.True(t, f.screen.started)
	require.True(t, f.screen.active)
}

func TestStartShowsFirstTone(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	assert.Equal(t, audiometry.Right, f.screen.cursor.Ear)
	assert.Equal(t, 0, f.screen.done)
	assert.Equal(t, 12, f.screen.total)
	assert.Equal(t, 1, f.em.emits)

	view := f.screen.View(100, 30)
	assert.Contains(t, view, "RIGHT EAR")
	assert.Contains(t, view, "250Hz")
	assert.Contains(t, view, "0 of 12")
}

func TestFullRunReplacesWithResults(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	var nav []tea.Msg
	for i := 0; i < 100 && len(nav) == 0; i++ {
		nav = pump(f.screen, press(f.screen, "space"))
	}
	require.Len(t, nav, 1)
	msg, ok := nav[0].(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", nav[0])
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)

	require.Len(t, f.records.saved, 1)
	assert.Equal(t, "alice", f.records.saved[0].UserID())
	assert.True(t, f.em.closed)
}

func TestResponseKeysIgnoredWhileBusy(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	first := press(f.screen, "n")
	require.NotNil(t, first)
	assert.True(t, f.screen.busy)
	assert.Nil(t, press(f.screen, "n"), "second answer while the first is in flight")

	pump(f.screen, first)
	assert.False(t, f.screen.busy)
	assert.Equal(t, 20, f.screen.cursor.Level.DB())
}

func TestEscAsksBeforeCancelling(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	assert.Nil(t, press(f.screen, "esc"))
	require.NotNil(t, f.screen.confirm)
	assert.Contains(t, f.screen.View(100, 30), "Stop the test?")

	nav := pump(f.screen, press(f.screen, "y"))
	require.Len(t, nav, 1)
	assert.IsType(t, router.PopScreenMsg{}, nav[0])
	assert.True(t, f.em.closed)
	assert.Empty(t, f.records.saved)
}

func TestEscDeclinedKeepsTesting(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	press(f.screen, "esc")
	assert.Nil(t, press(f.screen, "n"))
	assert.Nil(t, f.screen.confirm)
	assert.False(t, f.em.closed)

	// Keys answer the test again.
	assert.NotNil(t, press(f.screen, "y"))
}

func TestDeviceFailureOffersRetry(t *testing.T) {
	f := newFixture(t)
	f.dev.openErr = errors.New("no sound card")

	pump(f.screen, f.screen.Init())
	assert.NotEmpty(t, f.screen.fatal)
	assert.Contains(t, f.screen.View(100, 30), "Cannot run the test")
	assert.Nil(t, press(f.screen, "space"))

	f.dev.openErr = nil
	pump(f.screen, press(f.screen, "r"))
	assert.Empty(t, f.screen.fatal)
	assert.True(t, f.screen.active)
}

func TestMissingUser(t *testing.T) {
	s := New(&env.Env{Device: &fakeDevice{em: &fakeEmitter{}}, Records: &memRecords{}})
	pump(s, s.Init())
	assert.Contains(t, s.fatal, "No user")
}

func TestAudioErrorThenReplay(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.em.fail = 1
	pump(f.screen, press(f.screen, "n"))
	assert.NotEmpty(t, f.screen.audioErr)
	assert.Contains(t, f.screen.audioErr, "press R")

	pump(f.screen, press(f.screen, "r"))
	assert.Empty(t, f.screen.audioErr)
	assert.Equal(t, 2, f.em.emits)
}

func TestCloseReleasesUnfinishedRun(t *testing.T) {
	f := newFixture(t)
	f.start(t)
	pump(f.screen, press(f.screen, "n"))

	f.screen.Close()
	assert.True(t, f.em.closed)
	assert.Empty(t, f.records.saved)
	assert.Equal(t, staircase.Idle, f.screen.sess.State())

	// A second Close, e.g. on program exit after a pop, is harmless.
	f.screen.Close()
}
