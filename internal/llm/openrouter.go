package llm

import (
	"cmp"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Model ids
// there are vendor-qualified ("mistralai/...") and pass through unchanged.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider from cfg.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	c := openai.DefaultConfig(cfg.APIKey)
	c.BaseURL = cmp.Or(cfg.BaseURL, openRouterURL)
	return &OpenRouterProvider{&OpenAIProvider{
		client: openai.NewClientWithConfig(c),
		model:  cfg.Model,
	}}, nil
}
