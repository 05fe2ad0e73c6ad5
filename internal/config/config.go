// Package config assembles the application configuration from built-in
// defaults, an optional YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/llm"
	"github.com/abhisek/elan/internal/speech"
)

// Config is the complete application configuration.
type Config struct {
	// DB is the SQLite database path. Empty means the platform default.
	DB      string         `yaml:"db"`
	Log     LogConfig      `yaml:"log"`
	LLM     llm.Config     `yaml:"llm"`
	Content content.Config `yaml:"content"`
	Speech  speech.Config  `yaml:"speech"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Mode string `yaml:"mode"` // dev or prod
	File string `yaml:"file"` // empty means the platform default
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Mode: "prod"},
		LLM:     llm.DefaultConfig(),
		Content: content.DefaultConfig(),
		Speech:  speech.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/elan/config.yaml, falling back to
// ~/.config/elan/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "elan", "config.yaml")
}

// Load builds the configuration. path names the YAML file; when it is
// empty the default location is tried and may be absent. A path given
// explicitly must exist. envFile is loaded without overriding variables
// that are already set.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		err := readFile(path, &cfg)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg = ApplyEnv(cfg)
	return cfg, cfg.Validate()
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any ELAN_* variables that are set.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("ELAN_DB"); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv("ELAN_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
	if v := os.Getenv("ELAN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	cfg.LLM = llm.ApplyEnv(cfg.LLM)

	if v := os.Getenv("ELAN_GLOSS_LANGUAGE"); v != "" {
		cfg.Content.GlossLanguage = v
	}

	if v := os.Getenv("ELAN_TTS"); v != "" {
		cfg.Speech.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("ELAN_TTS_VOICE"); v != "" {
		cfg.Speech.Voice = v
	}
	if v := os.Getenv("ELAN_TTS_MODEL"); v != "" {
		cfg.Speech.Model = v
	}

	return cfg
}

// Validate checks the settings that cannot be repaired later. A missing
// LLM key is not an error here: the app still runs on the built-in A1
// words and the local voice.
func (c Config) Validate() error {
	switch c.Log.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("unknown log mode: %q", c.Log.Mode)
	}
	if err := c.Speech.Validate(); err != nil {
		return err
	}
	return nil
}

// SpeechConfig returns the speech settings with the Gemini key shared from
// the LLM configuration.
func (c Config) SpeechConfig() speech.Config {
	s := c.Speech
	if s.APIKey == "" {
		s.APIKey = c.LLM.Gemini.APIKey
	}
	if s.APIKey == "" {
		s.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	}
	return s
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
