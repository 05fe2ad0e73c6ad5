package speech

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Gemini speech defaults.
const (
	DefaultModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice = "Kore"
)

const ttsPrompt = "Speak this French text naturally and clearly: %s"

// ErrNoAudio is returned when a speech response carries no audio.
var ErrNoAudio = errors.New("no audio in speech response")

// GeminiTTS synthesizes speech with a Gemini TTS model.
type GeminiTTS struct {
	client *genai.Client
	model  string
	voice  string
}

var _ Synthesizer = (*GeminiTTS)(nil)

// NewGeminiTTS creates a Gemini synthesizer. Empty model or voice take the
// package defaults.
func NewGeminiTTS(ctx context.Context, apiKey, model, voice string) (*GeminiTTS, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required for speech")
	}
	if model == "" {
		model = DefaultModel
	}
	if voice == "" {
		voice = DefaultVoice
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiTTS{client: client, model: model, voice: voice}, nil
}

// Synthesize returns text as 24 kHz mono WAV.
func (g *GeminiTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(ttsPrompt, text)), config)
	if err != nil {
		return nil, fmt.Errorf("gemini speech: %w", err)
	}

	pcm, err := extractAudio(result)
	if err != nil {
		return nil, err
	}
	return EncodeWAV(pcm, SampleRate, Channels, BitsPerSample), nil
}

// extractAudio returns the first inline audio part of the first candidate.
func extractAudio(result *genai.GenerateContentResponse) ([]byte, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, ErrNoAudio
	}
	c := result.Candidates[0]
	if c == nil || c.Content == nil {
		return nil, ErrNoAudio
	}
	for _, part := range c.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, ErrNoAudio
}
