package llm

import (
	"encoding/json"
	"net/http"
)

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// completion is what every adapter extracts from its SDK's reply before
// the shared checks run.
type completion struct {
	content json.RawMessage
	usage   Usage
	model   string
	stop    string
}

// finish turns an adapter's completion into a Response. Truncated output
// is reported as ErrMaxTokensExceeded since it can never satisfy a schema.
func finish(req Request, c completion) (*Response, error) {
	if c.stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: c.content}
	}
	if req.Schema != nil {
		if err := validateResponse(req.Schema, c.content); err != nil {
			return nil, err
		}
	}
	if c.usage.TotalTokens == 0 {
		c.usage.TotalTokens = c.usage.InputTokens + c.usage.OutputTokens
	}
	if c.stop == "" {
		c.stop = StopEnd
	}
	return &Response{
		Content:    c.content,
		Usage:      c.usage,
		Model:      c.model,
		StopReason: c.stop,
	}, nil
}

// classifyStatus maps the HTTP status carried by an SDK error onto the
// package's error types. A zero status means the request never got an
// answer.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ErrAuth{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
