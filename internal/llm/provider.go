package llm

import (
	"context"
	"encoding/json"
)

// Provider generates text from a language model. Implementations translate
// Request into their vendor API and map vendor failures onto the error
// types in errors.go.
type Provider interface {
	// Generate runs one completion. With req.Schema set, Content is
	// compact JSON that validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any vendor-side aliasing.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	System string

	// Quiz generation sends one user message carrying the study material.
	Messages []Message

	// Schema, when set, asks for JSON output and is enforced on the reply.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero keeps the vendor default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case ("question-set") and keys the compiled-schema
	// cache, so two schemas must never share one.
	Name string

	Description string

	Definition map[string]any
}

// Response is the outcome of a successful Generate.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is stopEnd or stopMaxTokens.
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)
