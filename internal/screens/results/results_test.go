package results

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/explain"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/screens/env"
)

func testRecord() audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			th := audiometry.Heard(audiometry.Level(3))
			if ear == audiometry.Left {
				th = audiometry.Heard(audiometry.Level(6))
			}
			if ear == audiometry.Left && f == 8000 {
				th = audiometry.NotDetected()
			}
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: th})
		}
	}
	return audiometry.NewRecord("rec-1", "alice", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), results)
}

func newScreen(e *env.Env, persistErr error) *ResultsScreen {
	rec := testRecord()
	return New(e, rec, scoring.Score(rec), persistErr)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestViewShowsBothEars(t *testing.T) {
	r := newScreen(&env.Env{}, nil)
	view := r.View(100, 80)

	assert.Contains(t, view, "RIGHT EAR")
	assert.Contains(t, view, "LEFT EAR")
	assert.Contains(t, view, "NORMAL RANGE")
	assert.Contains(t, view, "MODERATE")
	assert.Contains(t, view, "NR")
	assert.Contains(t, view, "1kHz")
	assert.Contains(t, view, "screening result")
	assert.NotContains(t, view, "could not be saved")
}

func TestViewWarnsWhenNotSaved(t *testing.T) {
	r := newScreen(&env.Env{}, errors.New("disk full"))
	assert.Contains(t, r.View(100, 80), "could not be saved")
}

func TestThresholdTable(t *testing.T) {
	table := ThresholdTable(testRecord())
	assert.Contains(t, table, "Right")
	assert.Contains(t, table, "20 dB")
	assert.Contains(t, table, "50 dB")
	assert.Contains(t, table, "8kHz")
}

func TestEnterPops(t *testing.T) {
	r := newScreen(&env.Env{}, nil)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestExplainUnavailableWithoutProvider(t *testing.T) {
	r := newScreen(&env.Env{}, nil)
	_, cmd := r.Update(key('e'))
	assert.Nil(t, cmd)
	assert.False(t, r.loading)
	for _, h := range r.KeyHints() {
		assert.NotEqual(t, "E", h.Key)
	}
}

func waitExplained(t *testing.T, r *ResultsScreen) {
	t.Helper()
	require.Eventually(t, func() bool {
		r.Update(spinnerTickMsg(time.Now()))
		return !r.loading
	}, 2*time.Second, 5*time.Millisecond)
}

func TestExplainShowsExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"headline": "Your left ear hears less than your right.",
		"summary": "The right ear is in the typical range.",
		"per_ear": {"right": "Typical.", "left": "Quiet tones were missed."},
		"next_steps": ["Book a hearing test."]
	}`)})
	r := newScreen(&env.Env{Explainer: explain.NewService(mock, explain.DefaultConfig())}, nil)

	_, cmd := r.Update(key('e'))
	require.NotNil(t, cmd)
	assert.True(t, r.loading)
	assert.Contains(t, r.View(100, 80), "Writing an explanation")

	// A second press while loading does nothing.
	_, cmd = r.Update(key('e'))
	assert.Nil(t, cmd)

	waitExplained(t, r)
	require.NotNil(t, r.explanation)
	view := r.View(100, 80)
	assert.Contains(t, view, "Your left ear hears less")
	assert.Contains(t, view, "Book a hearing test.")
	assert.Equal(t, 1, mock.CallCount())
}

func TestExplainFailureCanRetry(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	r := newScreen(&env.Env{Explainer: explain.NewService(mock, explain.DefaultConfig())}, nil)

	r.Update(key('e'))
	waitExplained(t, r)
	assert.Nil(t, r.explanation)
	assert.Contains(t, r.explainErr, "Press E")

	_, cmd := r.Update(key('e'))
	assert.NotNil(t, cmd)
	assert.True(t, r.loading)
	waitExplained(t, r)
}
