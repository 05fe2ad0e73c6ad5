package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = map[string]string{
	"gpt-4o":       "gpt-4o",
	"gpt-4o-mini":  "gpt-4o-mini",
	"gpt-4.1-mini": "gpt-4.1-mini",
}

// OpenAIProvider talks to the Chat Completions API or anything compatible
// with it (set BaseURL).
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider builds a provider from cfg.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(c),
		model:  resolveModel(cfg.Model, openaiModels),
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chat := openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.System != "" {
		chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: req.System,
		})
	}
	chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: req.Prompt,
	})

	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("openai: schema %s: %w", req.Schema.Name, err)
		}
		chat.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	out, err := p.client.CreateChatCompletion(ctx, chat)
	if err != nil {
		return nil, openaiError(err)
	}
	if len(out.Choices) == 0 {
		return nil, &Error{Kind: KindUnavailable, Err: errors.New("openai: no choices in reply")}
	}

	choice := out.Choices[0]
	stop := StopEnd
	switch choice.FinishReason {
	case openai.FinishReasonLength:
		stop = StopMaxTokens
	case openai.FinishReasonContentFilter:
		return nil, &Error{Kind: KindBlocked, Err: errors.New("openai: content filter")}
	}

	content, err := finish(req.Schema, choice.Message.Content, stop)
	if err != nil {
		return nil, err
	}
	return &Response{
		Content: content,
		Usage:   Usage{InputTokens: out.Usage.PromptTokens, OutputTokens: out.Usage.CompletionTokens},
		Model:   out.Model,
		Stop:    stop,
	}, nil
}

func (p *OpenAIProvider) ModelID() string { return p.model }

func openaiError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fromStatus(reqErr.HTTPStatusCode, err)
	}
	return &Error{Kind: KindUnavailable, Err: err}
}
