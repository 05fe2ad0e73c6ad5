package speech

import (
	"context"
	"fmt"

	"github.com/abhisek/elan/internal/logger"
)

// Speech modes.
const (
	ModeGemini = "gemini"
	ModeSystem = "system"
	ModeOff    = "off"
)

// Config selects how text is spoken.
type Config struct {
	Mode   string `yaml:"mode"`  // gemini, system or off
	Model  string `yaml:"model"` // Gemini TTS model
	Voice  string `yaml:"voice"` // Gemini prebuilt voice name
	APIKey string `yaml:"-"`     // shared with the Gemini content provider
}

// DefaultConfig returns the default speech configuration.
func DefaultConfig() Config {
	return Config{
		Mode:  ModeGemini,
		Model: DefaultModel,
		Voice: DefaultVoice,
	}
}

// Validate checks the mode.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeGemini, ModeSystem, ModeOff:
		return nil
	}
	return fmt.Errorf("unknown speech mode: %q", c.Mode)
}

// New builds a Speaker for cfg. Gemini without an API key degrades to the
// system voice.
func New(ctx context.Context, cfg Config, log *logger.Logger) Speaker {
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Mode {
	case ModeOff:
		return Nop{}
	case ModeGemini:
		tts, err := NewGeminiTTS(ctx, cfg.APIKey, cfg.Model, cfg.Voice)
		if err == nil {
			return NewService(tts, NewExecPlayer(), NewSystemVoice(), log)
		}
		log.Warn("gemini speech unavailable, using system voice", "error", err)
	case ModeSystem:
	default:
		log.Warn("unknown speech mode, using system voice", "mode", cfg.Mode)
	}
	return NewService(nil, nil, NewSystemVoice(), log)
}
