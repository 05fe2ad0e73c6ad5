// Package speech pronounces French text. A remote voice is tried first and
// a local system voice is always available behind it; speaking never fails
// from the caller's point of view.
package speech

import (
	"context"
	"strings"

	"github.com/abhisek/elan/internal/logger"
)

// Speaker pronounces text. Failures are logged, never returned.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// Synthesizer turns text into a playable WAV file.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Player plays WAV audio.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// Voice speaks text directly with a local engine.
type Voice interface {
	Say(ctx context.Context, text string) error
}

// Service speaks through a synthesizer and player, falling back to a
// local voice when either fails.
type Service struct {
	synth    Synthesizer
	player   Player
	fallback Voice
	log      *logger.Logger
}

var _ Speaker = (*Service)(nil)

// NewService creates a speech service. synth and player may be nil to use
// the fallback voice only.
func NewService(synth Synthesizer, player Player, fallback Voice, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{synth: synth, player: player, fallback: fallback, log: log}
}

// Speak pronounces text.
func (s *Service) Speak(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if s.synth != nil && s.player != nil {
		err := s.speakPrimary(ctx, text)
		if err == nil {
			return
		}
		s.log.Warn("speech synthesis failed, using system voice", "chars", len(text), "error", err)
	}

	if s.fallback == nil {
		return
	}
	if err := s.fallback.Say(ctx, text); err != nil {
		s.log.Warn("system voice failed", "chars", len(text), "error", err)
	}
}

func (s *Service) speakPrimary(ctx context.Context, text string) error {
	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	return s.player.Play(ctx, audio)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

// Speak does nothing.
func (Nop) Speak(context.Context, string) {}
