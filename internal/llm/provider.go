package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a language model and returns its reply.
type Provider interface {
	// Generate returns the model's reply. When req.Schema is set the
	// vendor's structured output mode is used and Content is validated
	// JSON; otherwise Content holds the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema, when set, constrains the reply to a JSON document.
	Schema *Schema

	// MaxTokens caps the reply; zero means DefaultMaxTokens.
	MaxTokens int

	// Temperature in [0, 1]; zero leaves the vendor default.
	Temperature float64
}

// NewRequest builds a single-turn request, the shape every tutor call uses.
func NewRequest(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
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

// Schema is a named JSON Schema. Name is kebab-case ("tutor-reply") and is
// sent as the schema name where the vendor API asks for one.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model actually served the request; may be a dated snapshot of
	// ModelID.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
