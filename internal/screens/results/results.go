// Package results shows the outcome of a finished screening.
package results

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/explain"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/ui/layout"
)

// spinnerTickMsg animates the spinner and polls for the explanation.
type spinnerTickMsg time.Time

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// explainTimeout bounds one explanation request, retries included.
const explainTimeout = 90 * time.Second

// ResultsScreen renders one record: per-ear categories, the threshold
// table and, on request, a plain-language explanation.
type ResultsScreen struct {
	env        *env.Env
	rec        audiometry.Record
	sum        scoring.Summary
	persistErr error

	loading     bool
	frame       int
	cancel      context.CancelFunc
	explanation *explain.Explanation
	explainErr  string
	scroll      int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the screen. persistErr is shown as a warning when the record
// could not be saved.
func New(e *env.Env, rec audiometry.Record, sum scoring.Summary, persistErr error) *ResultsScreen {
	return &ResultsScreen{env: e, rec: rec, sum: sum, persistErr: persistErr}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) canExplain() bool {
	return r.env.Explainer.Enabled()
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if r.canExplain() && !r.loading && r.explanation == nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
	}
	if r.explanation != nil {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Done"})
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		return r.poll()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			r.stop()
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "e":
			return r.requestExplanation()
		case "up", "k":
			if r.scroll > 0 {
				r.scroll--
			}
		case "down", "j":
			r.scroll++
		}
	}
	return r, nil
}

func (r *ResultsScreen) requestExplanation() (screen.Screen, tea.Cmd) {
	if !r.canExplain() || r.loading || r.explanation != nil {
		return r, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
	r.cancel = cancel
	r.loading = true
	r.explainErr = ""
	r.env.Explainer.Request(ctx, r.rec, r.sum)
	r.env.Log().Debug("explanation requested", zap.String("record_id", r.rec.ID()))
	return r, tick()
}

func (r *ResultsScreen) poll() (screen.Screen, tea.Cmd) {
	if !r.loading {
		return r, nil
	}
	res, ok := r.env.Explainer.Consume()
	if !ok {
		r.frame = (r.frame + 1) % len(spinnerFrames)
		return r, tick()
	}
	r.stop()
	if res.Err != nil {
		r.env.Log().Warn("explanation failed", zap.String("record_id", r.rec.ID()), zap.Error(res.Err))
		var auth *llm.ErrAuth
		switch {
		case errors.Is(res.Err, context.DeadlineExceeded):
			r.explainErr = "The explanation took too long. Press E to try again."
		case errors.As(res.Err, &auth):
			r.explainErr = "The LLM provider rejected the API key. Check your configuration."
		default:
			r.explainErr = "Could not generate an explanation. Press E to try again."
		}
		return r, nil
	}
	r.explanation = res.Explanation
	return r, nil
}

func (r *ResultsScreen) stop() {
	r.loading = false
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
