package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-pro":   "gemini-2.5-pro",
	"gemini-lite":  "gemini-2.5-flash-lite",
}

// GeminiProvider talks to the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a provider from cfg.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: client: %w", err)
	}
	return &GeminiProvider{client: client, model: resolveModel(cfg.Model, geminiModels)}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	gc := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = geminiSchema(req.Schema.Definition)
	}

	out, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), gc)
	if err != nil {
		return nil, geminiError(err)
	}

	if fb := out.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, &Error{Kind: KindBlocked, Err: fmt.Errorf("gemini: prompt blocked: %s", fb.BlockReason)}
	}
	stop := StopEnd
	if len(out.Candidates) > 0 {
		switch out.Candidates[0].FinishReason {
		case genai.FinishReasonMaxTokens:
			stop = StopMaxTokens
		case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent:
			return nil, &Error{Kind: KindBlocked, Err: errors.New("gemini: reply blocked")}
		}
	}

	content, err := finish(req.Schema, out.Text(), stop)
	if err != nil {
		return nil, err
	}
	resp := &Response{Content: content, Model: p.model, Stop: stop}
	if u := out.UsageMetadata; u != nil {
		resp.Usage = Usage{InputTokens: int(u.PromptTokenCount), OutputTokens: int(u.CandidatesTokenCount)}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string { return p.model }

// geminiError classifies a client failure. The SDK returns APIError by
// value; the pointer form is matched too.
func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(apiErr.Code, err)
	}
	var apiPtr *genai.APIError
	if errors.As(err, &apiPtr) && apiPtr != nil {
		return fromStatus(apiPtr.Code, err)
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

var geminiTypes = map[string]genai.Type{
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
	"array":   genai.TypeArray,
	"object":  genai.TypeObject,
}

// geminiSchema converts the JSON Schema subset used by content schemas
// into genai's own schema type. Unknown keywords are dropped.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{Type: genai.TypeString}
	if t, ok := def["type"].(string); ok {
		if gt, ok := geminiTypes[t]; ok {
			s.Type = gt
		}
	}
	s.Description, _ = def["description"].(string)

	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	s.Required = stringList(def["required"])
	s.Enum = stringList(def["enum"])
	if n, ok := schemaInt(def["minItems"]); ok {
		s.MinItems = &n
	}
	if n, ok := schemaInt(def["maxItems"]); ok {
		s.MaxItems = &n
	}
	return s
}

// stringList accepts both []string literals and []any from decoded JSON.
func stringList(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		var out []string
		for _, e := range l {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// schemaInt reads a count written as a Go literal or decoded from JSON.
func schemaInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}
