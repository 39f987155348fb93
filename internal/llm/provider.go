package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a completion. Implementations translate Request into
// their SDK's call and map failures onto the error types in errors.go.
type Provider interface {
	// Generate returns JSON content. When req.Schema is set the content
	// has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its structured output
	// mode and enables validation of the reply.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document. Name is kebab-case and is sent
// to providers that require one, e.g. "hearing-explanation".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may
	// differ from the configured alias.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
