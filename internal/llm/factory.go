package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/store"
)

type constructor func(context.Context, Config) (Provider, error)

var constructors = map[string]constructor{
	ProviderGemini: func(ctx context.Context, c Config) (Provider, error) {
		return NewGeminiProvider(ctx, c.Gemini)
	},
	ProviderOpenAI: func(_ context.Context, c Config) (Provider, error) {
		return NewOpenAIProvider(c.OpenAI)
	},
	ProviderAnthropic: func(_ context.Context, c Config) (Provider, error) {
		return NewAnthropicProvider(c.Anthropic)
	},
	ProviderOpenRouter: func(_ context.Context, c Config) (Provider, error) {
		return NewOpenRouterProvider(c.OpenRouter)
	},
}

// NewProvider builds the configured provider. Calls pass through a timeout,
// then retries, then the request journal. The mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logger.Logger) (Provider, error) {
	if cfg.Provider == ProviderMock {
		return NewMockProvider(), nil
	}
	build, ok := constructors[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("llm: %s: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, events, log)
	p = WithRetry(p, cfg.Retry, log)
	return WithTimeout(p, cfg.Timeout), nil
}
