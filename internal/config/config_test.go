package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elan/internal/llm"
	"github.com/abhisek/elan/internal/speech"
)

// isolate points every lookup at an empty temp tree so the developer's
// own configuration and keys never leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"ELAN_DB", "ELAN_LOG_MODE", "ELAN_LOG_FILE", "ELAN_LLM_PROVIDER",
		"ELAN_GEMINI_API_KEY", "ELAN_GEMINI_MODEL", "ELAN_LLM_TIMEOUT",
		"ELAN_GLOSS_LANGUAGE", "ELAN_TTS", "ELAN_TTS_VOICE", "ELAN_TTS_MODEL",
		"GEMINI_API_KEY", "API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "Chinese", cfg.Content.GlossLanguage)
	assert.Equal(t, speech.ModeGemini, cfg.Speech.Mode)
	assert.Equal(t, "Kore", cfg.Speech.Voice)
}

func TestLoadYAMLFromDefaultPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "elan", "config.yaml"), `
db: /tmp/elan-test.db
log:
  mode: dev
llm:
  provider: openai
  timeout: 45s
  openai:
    model: gpt-4.1-mini
content:
  gloss_language: English
  vocabulary_count: 12
speech:
  mode: system
`)

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elan-test.db", cfg.DB)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "English", cfg.Content.GlossLanguage)
	assert.Equal(t, 12, cfg.Content.VocabularyCount)
	assert.Equal(t, speech.ModeSystem, cfg.Speech.Mode)

	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 10, cfg.Content.ExamCount)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "llm: [not, a, map")

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	writeFile(t, path, "content:\n  gloss_language: English\nspeech:\n  voice: Puck\n")

	t.Setenv("ELAN_GLOSS_LANGUAGE", "Japanese")
	t.Setenv("ELAN_TTS", "OFF")
	t.Setenv("ELAN_LLM_PROVIDER", "mock")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "Japanese", cfg.Content.GlossLanguage)
	assert.Equal(t, speech.ModeOff, cfg.Speech.Mode)
	assert.Equal(t, "Puck", cfg.Speech.Voice)
	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "ELAN_TTS_VOICE=Charon\nELAN_GEMINI_MODEL=gemini-pro\n")

	t.Setenv("ELAN_GEMINI_MODEL", "gemini-flash")
	// godotenv only fills variables that are absent, not merely empty.
	// isolate's t.Setenv restores the original state afterwards.
	os.Unsetenv("ELAN_TTS_VOICE")

	cfg, err := Load("", envFile)
	require.NoError(t, err)

	assert.Equal(t, "Charon", cfg.Speech.Voice)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
}

func TestMissingDotEnvIsFine(t *testing.T) {
	dir := isolate(t)
	_, err := Load("", filepath.Join(dir, "nope.env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Log.Mode = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Speech.Mode = "loud"
	assert.Error(t, cfg.Validate())
}

func TestSpeechConfigSharesGeminiKey(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.LLM.Gemini.APIKey = "from-llm"
	assert.Equal(t, "from-llm", cfg.SpeechConfig().APIKey)

	cfg.LLM.Gemini.APIKey = ""
	t.Setenv("GEMINI_API_KEY", "from-env")
	assert.Equal(t, "from-env", cfg.SpeechConfig().APIKey)
}
