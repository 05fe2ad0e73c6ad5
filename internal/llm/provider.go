// Package llm sends single-turn prompts to a hosted model and returns JSON
// checked against a schema. Gemini, OpenAI, Anthropic and OpenRouter are
// supported; a FIFO mock serves tests and offline runs.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply per request.
type Provider interface {
	// Generate sends req and returns the reply. With a Schema, Content is
	// JSON that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any server-side aliasing.
	ModelID() string
}

// Request is a system prompt plus one user prompt. Every content request
// elan makes is a single turn, so there is no conversation history.
type Request struct {
	System string
	Prompt string

	// Schema asks the provider for structured output. Nil asks for text,
	// which comes back as a JSON string.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero keeps the provider default.
	Temperature float64
}

// Schema is a JSON Schema with a name that providers use as the tool or
// format name, e.g. "vocabulary-batch".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop is why generation ended.
type Stop string

const (
	StopEnd       Stop = "end"
	StopMaxTokens Stop = "max_tokens"
)

// Response is a validated reply.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string // the model that actually served the request
	Stop    Stop
}

// Decode unmarshals Content into v. A shape mismatch is reported as an
// invalid reply.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &Error{Kind: KindInvalid, Content: r.Content, Err: err}
	}
	return nil
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

// finish turns reply text into Response content. Structured replies are
// unfenced and validated; a structured reply cut off at MaxTokens is
// reported as truncated since it cannot be valid JSON.
func finish(schema *Schema, text string, stop Stop) (json.RawMessage, error) {
	if schema == nil {
		return textContent(text), nil
	}
	raw := json.RawMessage(stripCodeFence(text))
	if stop == StopMaxTokens {
		return nil, &Error{Kind: KindTruncated, Content: raw}
	}
	if err := validateResponse(schema, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// textContent wraps plain text as a JSON string.
func textContent(text string) json.RawMessage {
	b, err := json.Marshal(text)
	if err != nil {
		return json.RawMessage(`""`)
	}
	return b
}

// resolveModel maps a short name to a provider model id. Unknown names are
// taken as model ids.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
