package session

import (
	"time"

	sess "github.com/abhisek/hearwise/internal/session"
)

// startedMsg is sent when Session.Start returns.
type startedMsg struct {
	Out sess.Outcome
	Err error
}

// respondedMsg is sent when Session.Respond returns.
type respondedMsg struct {
	Heard bool
	Out   sess.Outcome
	Err   error
}

// replayedMsg is sent when Session.Replay returns.
type replayedMsg struct {
	Err error
}

// cancelledMsg is sent once the run has been abandoned.
type cancelledMsg struct{}

// flashDoneMsg clears the response indicator.
type flashDoneMsg struct {
	Seq int
}

// flashFor is how long the last response stays highlighted.
var flashFor = 400 * time.Millisecond
