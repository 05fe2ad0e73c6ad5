package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompletion answers with one choice.
func chatCompletion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini-2024-07-18",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func chatFailure(status int, code string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": code, "type": code, "code": code},
		})
	}
}

func openaiServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func TestOpenAIRequestShape(t *testing.T) {
	var body struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	p := openaiServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		chatCompletion(`{"title":"Les articles définis"}`, "stop")(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "Tu es un professeur de français.",
		Prompt:    "Une règle de grammaire.",
		Schema:    titleSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Content != "Une règle de grammaire." {
		t.Errorf("messages = %+v", body.Messages)
	}
	if body.ResponseFormat.Type != "json_schema" || body.ResponseFormat.JSONSchema.Name != "test-title" || !body.ResponseFormat.JSONSchema.Strict {
		t.Errorf("response_format = %+v", body.ResponseFormat)
	}
	if string(resp.Content) != `{"title":"Les articles définis"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Model != "gpt-4o-mini-2024-07-18" || resp.Usage != (Usage{InputTokens: 40, OutputTokens: 25}) {
		t.Errorf("model %q usage %+v", resp.Model, resp.Usage)
	}
}

func TestOpenAIOmitsEmptySystem(t *testing.T) {
	var body struct {
		Messages []map[string]any `json:"messages"`
	}
	p := openaiServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		chatCompletion("Salut", "stop")(w, r)
	})

	if _, err := p.Generate(context.Background(), Request{Prompt: "Salue-moi.", MaxTokens: 16}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(body.Messages) != 1 {
		t.Errorf("messages = %+v, want only the user turn", body.Messages)
	}
}

func TestOpenAIFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    Kind
	}{
		{"rate limited", chatFailure(http.StatusTooManyRequests, "rate_limit_exceeded"), KindRateLimit},
		{"bad key", chatFailure(http.StatusUnauthorized, "invalid_api_key"), KindRejected},
		{"unknown model", chatFailure(http.StatusNotFound, "model_not_found"), KindRejected},
		{"server error", chatFailure(http.StatusBadGateway, "server_error"), KindUnavailable},
		{"length", chatCompletion(`{"title":"Les`, "length"), KindTruncated},
		{"content filter", chatCompletion("", "content_filter"), KindBlocked},
		{"wrong shape", chatCompletion(`{"name":"x"}`, "stop"), KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openaiServer(t, tt.handler)
			_, err := p.Generate(context.Background(), Request{Prompt: "x", Schema: titleSchema(), MaxTokens: 32})
			if !IsKind(err, tt.want) {
				t.Fatalf("err = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected an error without a key")
	}
}

func TestOpenRouterDefaultsAndPassthrough(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "mistralai/mistral-small"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != "mistralai/mistral-small" {
		t.Errorf("model = %q", p.ModelID())
	}

	// A short name is not resolved against the OpenAI aliases.
	p, _ = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "gpt-4o-mini"})
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Error("expected an error without a key")
	}
}

func TestOpenRouterHonoursBaseURL(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		chatCompletion("Salut", "stop")(w, r)
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.5-flash", BaseURL: srv.URL + "/api/v1"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{Prompt: "Salue-moi.", MaxTokens: 16})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if path != "/api/v1/chat/completions" {
		t.Errorf("path = %q", path)
	}
	if string(resp.Content) != `"Salut"` {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestOpenAITransportFailure(t *testing.T) {
	c := openai.DefaultConfig("k")
	c.BaseURL = "http://127.0.0.1:1/v1"
	p := &OpenAIProvider{client: openai.NewClientWithConfig(c), model: "gpt-4o-mini"}

	_, err := p.Generate(context.Background(), Request{Prompt: "x", MaxTokens: 8})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
