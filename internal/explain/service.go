package explain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/scoring"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("explanations are not configured")

// Service generates explanations, synchronously or in the background.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	gen     int
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service. A nil provider yields a
// disabled service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether the service can generate anything.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Explain generates an explanation for rec and blocks until it is ready.
func (s *Service) Explain(ctx context.Context, rec audiometry.Record, sum scoring.Summary) (*Explanation, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(rec, sum)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		RecordID:  rec.ID(),
		Headline:  out.Headline,
		Summary:   out.Summary,
		Right:     out.PerEar.Right,
		Left:      out.PerEar.Left,
		NextSteps: out.NextSteps,
		Model:     resp.Model,
	}, nil
}

// Request starts generation in the background. A newer request replaces
// the result of an older one still in flight.
func (s *Service) Request(ctx context.Context, rec audiometry.Record, sum scoring.Summary) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	go func() {
		exp, err := s.Explain(ctx, rec, sum)
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// Result is a finished background request.
type Result struct {
	Explanation *Explanation
	Err         error
}

// Consume returns the result of the last Request once it is ready. ok is
// false while generation is still running. The slot is cleared on read.
func (s *Service) Consume() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	res := Result{Explanation: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return res, true
}

type explanationOutput struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	PerEar   struct {
		Right string `json:"right"`
		Left  string `json:"left"`
	} `json:"per_ear"`
	NextSteps []string `json:"next_steps"`
}
