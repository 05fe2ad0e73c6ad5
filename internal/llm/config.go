package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects a provider and holds the settings of each one. Only the
// selected provider's section is used.
type Config struct {
	Provider string `yaml:"provider"`

	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`

	Retry RetryConfig `yaml:"retry"`

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"` // for OpenAI-compatible servers
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig uses Gemini Flash: cheap, fast, and the same key drives
// the Gemini voice.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envFields lists the string settings ApplyEnv reads, keyed by variable.
func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"ELAN_LLM_PROVIDER":       &c.Provider,
		"ELAN_GEMINI_API_KEY":     &c.Gemini.APIKey,
		"ELAN_GEMINI_MODEL":       &c.Gemini.Model,
		"ELAN_OPENAI_API_KEY":     &c.OpenAI.APIKey,
		"ELAN_OPENAI_MODEL":       &c.OpenAI.Model,
		"ELAN_OPENAI_BASE_URL":    &c.OpenAI.BaseURL,
		"ELAN_ANTHROPIC_API_KEY":  &c.Anthropic.APIKey,
		"ELAN_ANTHROPIC_MODEL":    &c.Anthropic.Model,
		"ELAN_OPENROUTER_API_KEY": &c.OpenRouter.APIKey,
		"ELAN_OPENROUTER_MODEL":   &c.OpenRouter.Model,
	}
}

// ApplyEnv overrides cfg with any ELAN_* variables that are set. A
// malformed ELAN_LLM_TIMEOUT is ignored.
func ApplyEnv(cfg Config) Config {
	for name, field := range cfg.envFields() {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	cfg.Provider = strings.ToLower(cfg.Provider)
	if v := os.Getenv("ELAN_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// discovery is the order in which the vendors' own key variables are
// probed when the configured provider has no key.
var discovery = []struct {
	provider string
	vars     []string
}{
	{ProviderGemini, []string{"GEMINI_API_KEY", "API_KEY"}},
	{ProviderOpenAI, []string{"OPENAI_API_KEY"}},
	{ProviderAnthropic, []string{"ANTHROPIC_API_KEY"}},
	{ProviderOpenRouter, []string{"OPENROUTER_API_KEY"}},
}

// Discover returns cfg unchanged when its provider is usable. Otherwise it
// switches to the first provider whose standard key variable is set, and
// reports false when there is none.
func Discover(cfg Config) (Config, bool) {
	if cfg.Validate() == nil {
		return cfg, true
	}
	for _, d := range discovery {
		for _, name := range d.vars {
			key := os.Getenv(name)
			if key == "" {
				continue
			}
			cfg.Provider = d.provider
			*cfg.apiKey() = key
			return cfg, true
		}
	}
	return cfg, false
}

// apiKey points at the key field of the selected provider, or nil.
func (c *Config) apiKey() *string {
	switch c.Provider {
	case ProviderGemini:
		return &c.Gemini.APIKey
	case ProviderOpenAI:
		return &c.OpenAI.APIKey
	case ProviderAnthropic:
		return &c.Anthropic.APIKey
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey
	}
	return nil
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	key := c.apiKey()
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("ELAN_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
