// Package session is the screen that runs a screening test.
package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/results"
	sess "github.com/abhisek/hearwise/internal/session"
	"github.com/abhisek/hearwise/internal/staircase"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/layout"
)

// SessionScreen drives one sess.Session from key presses.
type SessionScreen struct {
	env  *env.Env
	sess *sess.Session

	started bool
	busy    bool
	cursor  audiometry.Coordinate
	active  bool
	done    int
	total   int

	// flash highlights the key just pressed.
	flash    string
	flashSeq int

	audioErr string
	fatal    string
	confirm  *components.Confirm
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// New creates the screen and its session. The session starts in Init.
func New(e *env.Env) *SessionScreen {
	return &SessionScreen{
		env:   e,
		sess:  e.NewSession(),
		total: audiometry.TotalPairs(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.busy = true
	return s.start()
}

func (s *SessionScreen) Title() string {
	return "Hearing test"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirm != nil:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop test"},
			{Key: "N", Description: "Keep going"},
		}
	case s.fatal != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Heard it"},
		{Key: "N", Description: "Not heard"},
		{Key: "R", Description: "Replay"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case respondedMsg:
		return s.handleResponded(msg)
	case replayedMsg:
		s.busy = false
		s.setAudioErr(msg.Err)
		return s, nil
	case cancelledMsg:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case flashDoneMsg:
		if msg.Seq == s.flashSeq {
			s.flash = ""
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// Close abandons an unfinished run and releases the audio device. The
// router calls it when the screen is popped or the program exits.
func (s *SessionScreen) Close() {
	if s.sess == nil {
		return
	}
	ctx := context.Background()
	if err := s.sess.Cancel(ctx); err != nil {
		s.env.Log().Warn("cancel session on close failed", zap.Error(err))
	}
	if err := s.sess.Close(); err != nil {
		s.env.Log().Warn("release audio on close failed", zap.Error(err))
	}
}

func (s *SessionScreen) start() tea.Cmd {
	ss := s.sess
	return func() tea.Msg {
		out, err := ss.Start(context.Background())
		return startedMsg{Out: out, Err: err}
	}
}

func (s *SessionScreen) respond(heard bool) tea.Cmd {
	ss := s.sess
	return func() tea.Msg {
		out, err := ss.Respond(context.Background(), heard)
		return respondedMsg{Heard: heard, Out: out, Err: err}
	}
}

func (s *SessionScreen) replay() tea.Cmd {
	ss := s.sess
	return func() tea.Msg {
		return replayedMsg{Err: ss.Replay(context.Background())}
	}
}

func (s *SessionScreen) cancel() tea.Cmd {
	ss, logger := s.sess, s.env.Log()
	return func() tea.Msg {
		if err := ss.Cancel(context.Background()); err != nil {
			logger.Warn("cancel session failed", zap.Error(err))
		}
		if err := ss.Close(); err != nil {
			logger.Warn("close session failed", zap.Error(err))
		}
		return cancelledMsg{}
	}
}

func (s *SessionScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Err != nil && s.sess.State() != staircase.Testing {
		switch {
		case errors.Is(msg.Err, identity.ErrNoUser):
			s.fatal = "No user selected. Go back and enter a name."
		case errors.Is(msg.Err, stimulus.ErrAudio):
			s.fatal = "Could not open the audio device: " + msg.Err.Error()
		default:
			s.fatal = msg.Err.Error()
		}
		return s, nil
	}
	s.fatal = ""
	s.started = true
	s.refresh()
	s.setAudioErr(msg.Err)
	return s, nil
}

func (s *SessionScreen) handleResponded(msg respondedMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Out.Finished() {
		rec := msg.Out.Step.Record
		if rec == nil || msg.Out.Summary == nil {
			s.fatal = "The test finished without a result."
			return s, nil
		}
		next := results.New(s.env, *rec, *msg.Out.Summary, msg.Out.PersistErr)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	s.refresh()
	s.setAudioErr(msg.Err)
	return s, nil
}

func (s *SessionScreen) setAudioErr(err error) {
	switch {
	case err == nil:
		s.audioErr = ""
	case errors.Is(err, stimulus.ErrAudio):
		s.audioErr = "The tone could not be played. Check your headphones and press R."
	default:
		s.audioErr = err.Error()
	}
}

func (s *SessionScreen) refresh() {
	s.cursor, s.active = s.sess.Cursor()
	s.done, s.total = s.sess.Progress()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirm != nil {
		c := s.confirm.Update(msg)
		s.confirm = &c
		if !c.Answered {
			return s, nil
		}
		s.confirm = nil
		if c.Yes {
			return s, s.cancel()
		}
		return s, nil
	}

	if key == "esc" {
		if s.started {
			c := components.NewConfirm("Stop the test? Your answers so far will be discarded.")
			s.confirm = &c
			return s, nil
		}
		return s, s.cancel()
	}

	// One request in flight at a time; key repeat must not answer twice.
	if s.busy {
		return s, nil
	}

	if s.fatal != "" {
		if key == "r" {
			s.fatal = ""
			s.busy = true
			return s, s.start()
		}
		return s, nil
	}
	if !s.active {
		return s, nil
	}

	switch key {
	case "space", " ", "y":
		return s.answer(true)
	case "n":
		return s.answer(false)
	case "r":
		s.busy = true
		s.flashKey("R")
		return s, tea.Batch(s.replay(), s.flashTimer())
	}
	return s, nil
}

func (s *SessionScreen) answer(heard bool) (screen.Screen, tea.Cmd) {
	s.busy = true
	if heard {
		s.flashKey("Space")
	} else {
		s.flashKey("N")
	}
	return s, tea.Batch(s.respond(heard), s.flashTimer())
}

func (s *SessionScreen) flashKey(k string) {
	s.flash = k
	s.flashSeq++
}

func (s *SessionScreen) flashTimer() tea.Cmd {
	seq := s.flashSeq
	return tea.Tick(flashFor, func(time.Time) tea.Msg { return flashDoneMsg{Seq: seq} })
}
