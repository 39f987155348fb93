package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/hearwise/internal/store"
)

// llmEvents captures AppendLLMRequest; the rest of EventRepo is unused.
type llmEvents struct {
	store.EventRepo
	got []store.LLMRequestEventData
	err error
}

func (e *llmEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	e.got = append(e.got, d)
	return e.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	events := &llmEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"headline":"ok"}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160},
	})
	p := WithLogging(mock, "mock", events, nil)

	ctx := WithPurpose(context.Background(), "explain")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "thresholds"}},
		Schema:   &Schema{Name: "x", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, events.got, 1)
	ev := events.got[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "explain", ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 120, ev.InputTokens)
	assert.Equal(t, 40, ev.OutputTokens)
	assert.Equal(t, `{"headline":"ok"}`, ev.ResponseBody)
	assert.True(t, strings.HasPrefix(ev.RequestBody, "[system]\nsys"))
	assert.Contains(t, ev.RequestBody, "[schema: x]")
}

func TestLoggingRecordsFailureAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	events := &llmEvents{err: errors.New("db locked")}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})
	p := WithLogging(mock, "anthropic", events, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, events.got, 1)
	assert.False(t, events.got[0].Success)
	assert.Equal(t, "unknown", events.got[0].Purpose)
	assert.Contains(t, events.got[0].ErrorMessage, "slow down")

	// One warning for the request, one for the failed append.
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "llm request failed", logs.All()[0].Message)
}

func TestLoggingWithoutRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), "mock", nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())

	var inner Provider = slowProvider{}
	assert.Equal(t, inner, WithTimeout(inner, 0))
}

func TestEstimateCost(t *testing.T) {
	cost, ok := EstimateCost("gpt-4o-mini", 1_000_000, 1_000_000)
	require.True(t, ok)
	assert.InDelta(t, 0.75, cost, 1e-9)

	_, ok = EstimateCost("no-such-model", 10, 10)
	assert.False(t, ok)
}

func TestNewProviderSelectsBackend(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err = NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: "openai"}, nil, nil)
	assert.Error(t, err)

	_, err = NewProvider(ctx, Config{Provider: "carrier-pigeon"}, nil, nil)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	for _, k := range []string{EnvProvider, "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, ok := Resolve()
	assert.False(t, ok)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, ok := Resolve()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)

	t.Setenv(EnvProvider, "anthropic")
	_, ok = Resolve()
	assert.False(t, ok, "explicit provider without its key")

	t.Setenv("HEARWISE_ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok = Resolve()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
}
