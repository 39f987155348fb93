package llm

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Truncated reports the reply as cut off at the token limit.
	Truncated bool

	// Delay holds the reply back until it elapses or ctx is done.
	Delay time.Duration
}

// MockProvider replays scripted replies in order and keeps every request
// it was given. Replies go through the same checks as a real adapter's.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	next, ok := m.pop(req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if next.Delay > 0 {
		if err := sleepCtx(ctx, next.Delay); err != nil {
			return nil, err
		}
	}
	if next.Err != nil {
		return nil, next.Err
	}
	c := completion{content: next.Content, usage: next.Usage, model: m.ModelID()}
	if next.Truncated {
		c.stop = StopMaxTokens
	}
	return finish(req, c)
}

func (m *MockProvider) pop(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return MockResponse{}, false
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next, true
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns how many times Generate ran.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
