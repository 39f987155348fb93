package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 10 * time.Millisecond, Multiplier: 2}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func okReply() MockResponse {
	return MockResponse{Content: json.RawMessage(`"ok"`)}
}

func TestRetry(t *testing.T) {
	invalid := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{`), Err: errors.New("bad json")}}

	tests := map[string]struct {
		script    []MockResponse
		wantCalls int
		wantErr   bool
	}{
		"first attempt":        {[]MockResponse{okReply()}, 1, false},
		"unavailable then ok":  {[]MockResponse{unavailable(), okReply()}, 2, false},
		"rate limited then ok": {[]MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okReply()}, 2, false},
		"attempts exhausted":   {[]MockResponse{unavailable(), unavailable(), unavailable(), okReply()}, 3, true},
		"truncation is final":  {[]MockResponse{{Truncated: true, Content: json.RawMessage(`"o`)}, okReply()}, 1, true},
		"invalid retried once": {[]MockResponse{invalid, invalid, okReply()}, 2, true},
		"auth is final":        {[]MockResponse{{Err: &ErrAuth{Status: http.StatusUnauthorized}}, okReply()}, 1, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", resp.Content)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mock.CallCount(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRetry_StopsWhenContextDone(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), okReply())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() > 1 {
		t.Errorf("calls = %d after cancel, want at most 1", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if id := WithRetry(NewMockProvider(), fastRetry()).ModelID(); id != "mock" {
		t.Fatalf("ModelID = %q, want mock", id)
	}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), false},
		{&ErrMaxTokensExceeded{}, false},
		{&ErrInvalidResponse{Err: errors.New("bad")}, false},
		{&ErrRateLimit{Err: errors.New("429")}, true},
		{&ErrProviderUnavailable{}, true},
		{&ErrAuth{Status: http.StatusForbidden}, false},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := Transient(tt.err); got != tt.want {
			t.Errorf("Transient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRetry_LogsEachRetry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(unavailable(), MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okReply())
	p := WithRetry(mock, fastRetry(), RetryLogger(zap.New(core)))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := logs.FilterMessage("retrying llm request").Len(); n != 2 {
		t.Fatalf("expected 2 retry logs, got %d", n)
	}
}

func TestRetry_BackoffCapped(t *testing.T) {
	r := WithRetry(NewMockProvider(), RetryConfig{
		MaxAttempts: 5,
		InitialWait: 10 * time.Millisecond,
		MaxWait:     40 * time.Millisecond,
		Multiplier:  4,
	}).(*RetryProvider)

	for attempt := 0; attempt < 5; attempt++ {
		if w := r.backoff(attempt, errors.New("x")); w > 48*time.Millisecond {
			t.Fatalf("attempt %d: wait %s exceeds cap plus jitter", attempt, w)
		}
	}
	if w := r.backoff(0, &ErrRateLimit{RetryAfter: time.Second}); w != time.Second {
		t.Fatalf("expected RetryAfter to win, got %s", w)
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(okReply())
	if _, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("upstream")
	tests := []struct {
		status    int
		transient bool
		want      any
	}{
		{http.StatusTooManyRequests, true, new(*ErrRateLimit)},
		{http.StatusUnauthorized, false, new(*ErrAuth)},
		{http.StatusForbidden, false, new(*ErrAuth)},
		{http.StatusBadGateway, true, new(*ErrProviderUnavailable)},
		{0, true, new(*ErrProviderUnavailable)},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, base)
		if !errors.As(err, tt.want) {
			t.Errorf("status %d: got %T, want %T", tt.status, err, tt.want)
		}
		if !errors.Is(err, base) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
		if Transient(err) != tt.transient {
			t.Errorf("status %d: Transient = %v, want %v", tt.status, Transient(err), tt.transient)
		}
	}
}

func TestFinishRejectsTruncation(t *testing.T) {
	_, err := finish(Request{}, completion{content: json.RawMessage(`{"a"`), stop: StopMaxTokens})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}

	resp, err := finish(Request{}, completion{content: json.RawMessage(`"ok"`), usage: Usage{InputTokens: 3, OutputTokens: 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopEnd || resp.Usage.TotalTokens != 7 {
		t.Errorf("resp = %+v", resp)
	}
}
