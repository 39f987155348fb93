package explain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/scoring"
)

func validJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "Your hearing looks typical in both ears.",
		"summary": "You heard most tones at quiet levels.",
		"per_ear": {"right": "Right ear responded at quiet levels.", "left": "Left ear missed the highest tone."},
		"next_steps": ["Repeat the screening in a year."]
	}`)
}

func testRecord() audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			th := audiometry.Heard(audiometry.Level(3))
			if ear == audiometry.Left && f == 8000 {
				th = audiometry.NotDetected()
			}
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: th})
		}
	}
	return audiometry.NewRecord("rec-1", "alice", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), results)
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON()})
	svc := NewService(mock, DefaultConfig())
	rec := testRecord()

	exp, err := svc.Explain(context.Background(), rec, scoring.Score(rec))
	require.NoError(t, err)
	assert.Equal(t, "rec-1", exp.RecordID)
	assert.Equal(t, "Your hearing looks typical in both ears.", exp.Headline)
	assert.Equal(t, "Left ear missed the highest tone.", exp.Left)
	assert.Equal(t, []string{"Repeat the screening in a year."}, exp.NextSteps)
	assert.Equal(t, "mock", exp.Model)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Same(t, Schema, call.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, call.MaxTokens)
	msg := call.Messages[0].Content
	assert.Contains(t, msg, "- 1kHz: 20 dB HL")
	assert.Contains(t, msg, "- 8kHz: not detected")
	assert.Contains(t, msg, "Category: normal range")
	assert.Contains(t, msg, "Right ear thresholds:")
}

func TestExplainTextEndsWithDisclaimer(t *testing.T) {
	exp := Explanation{Headline: "h", Summary: "s", Right: "r", Left: "l", NextSteps: []string{"a", "b"}}
	text := exp.Text()
	assert.True(t, strings.HasSuffix(text, Disclaimer+"\n"))
	assert.Contains(t, text, "  - b\n")
}

func TestExplainProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig())
	rec := testRecord()

	_, err := svc.Explain(context.Background(), rec, scoring.Score(rec))
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestExplainMalformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())
	rec := testRecord()

	_, err := svc.Explain(context.Background(), rec, scoring.Score(rec))
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
	assert.ErrorContains(t, err, "explanation generation")
}

func TestExplainMissingField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"headline": "h", "summary": "s"}`)})
	svc := NewService(mock, DefaultConfig())
	rec := testRecord()

	_, err := svc.Explain(context.Background(), rec, scoring.Score(rec))
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestDisabled(t *testing.T) {
	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())

	svc := NewService(nil, DefaultConfig())
	assert.False(t, svc.Enabled())
	_, err := svc.Explain(context.Background(), testRecord(), scoring.Summary{})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON()})
	svc := NewService(mock, DefaultConfig())
	rec := testRecord()

	_, ok := svc.Consume()
	assert.False(t, ok)

	svc.Request(t.Context(), rec, scoring.Score(rec))

	var res Result
	require.Eventually(t, func() bool {
		res, ok = svc.Consume()
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, res.Err)
	require.NotNil(t, res.Explanation)
	assert.Equal(t, "rec-1", res.Explanation.RecordID)

	_, ok = svc.Consume()
	assert.False(t, ok, "slot cleared after consume")
}

func TestUserMessageListsEachEarInFrequencyOrder(t *testing.T) {
	rec := testRecord()
	msg := buildUserMessage(rec, scoring.Score(rec))

	right := strings.Index(msg, "Right ear thresholds:")
	left := strings.Index(msg, "Left ear thresholds:")
	require.True(t, right >= 0 && left > right, "ears out of order:\n%s", msg)

	want := []string{"- 250Hz: 20 dB HL", "- 500Hz: 20 dB HL", "- 1kHz: 20 dB HL", "- 2kHz: 20 dB HL", "- 4kHz: 20 dB HL", "- 8kHz: 20 dB HL"}
	pos := right
	for _, line := range want {
		i := strings.Index(msg[pos:left], line)
		require.GreaterOrEqual(t, i, 0, "right ear missing %q", line)
		pos += i
	}
	assert.Contains(t, msg[left:], "- 8kHz: not detected")
	assert.Equal(t, 1, strings.Count(msg, "not detected\n"))
}
