package llm

import (
	"context"
	"encoding/json"
)

// Provider is the generation capability the quiz pipeline consumes.
// It accepts a prompt plus an optional output schema and returns structured
// data. Implementations are fallible and non-deterministic; callers must
// treat every call as independently retryable.
type Provider interface {
	// Generate sends a request to the model and returns its response.
	// When req.Schema is set the provider uses its native structured-output
	// mechanism and the returned Content is schema-validated JSON. When
	// Schema is nil the Content is the raw text of the completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single model invocation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation and auditing are
	// single-turn, so this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-questions".
	// Used as the structured-output name for providers that require one.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output. Schema-validated JSON when the
	// request carried a schema, raw completion text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
