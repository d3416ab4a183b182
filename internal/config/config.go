package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config file flag is given.
// A missing file at this path is not an error; the tool runs on defaults.
const DefaultPath = "config.yaml"

// Summary providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrMissingAPIKey is returned when no OpenAI credential is available.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set; add it to your environment or a .env file")

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Whisper WhisperConfig `yaml:"whisper"`
	Summary SummaryConfig `yaml:"summary"`
	Logging LoggingConfig `yaml:"logging"`
}

type PathsConfig struct {
	Audio       string `yaml:"audio"`
	Transcripts string `yaml:"transcripts"`
	Notes       string `yaml:"notes"`
	Templates   string `yaml:"templates"`
}

type OpenAIConfig struct {
	APIKey         string `yaml:"-"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	AudioModel     string `yaml:"audio_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// WhisperConfig configures the local transcription fallback.
// The model file is downloaded from ModelURL on first use if absent.
type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	ModelURL   string `yaml:"model_url"`
	Language   string `yaml:"language"`
}

type SummaryConfig struct {
	Provider     string `yaml:"provider"`
	GeminiModel  string `yaml:"gemini_model"`
	GeminiAPIKey string `yaml:"-"`
	Docx         bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config file, overlays environment variables and
// validates the result. Credentials come from the environment only;
// a .env file in the working directory is honored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// no config file, run on defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if model := os.Getenv("GPT_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	cfg.Summary.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills in defaults and rejects configurations the pipeline
// cannot run with.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio_recordings"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcriptions"
	}
	if c.Paths.Notes == "" {
		c.Paths.Notes = "case_notes"
	}
	if c.Paths.Templates == "" {
		c.Paths.Templates = "templates"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.OpenAI.AudioModel == "" {
		c.OpenAI.AudioModel = "whisper-1"
	}
	if c.OpenAI.TimeoutSeconds == 0 {
		// transcription of long recordings can be slow
		c.OpenAI.TimeoutSeconds = 600
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = filepath.Join("models", "ggml-base.en.bin")
	}
	if c.Whisper.ModelURL == "" {
		c.Whisper.ModelURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.en.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Summary.Provider == "" {
		c.Summary.Provider = ProviderOpenAI
	}
	if c.Summary.GeminiModel == "" {
		c.Summary.GeminiModel = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Summary.Provider {
	case ProviderOpenAI:
	case ProviderGemini:
		if c.Summary.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when summary.provider is gemini")
		}
	default:
		return fmt.Errorf("unknown summary provider: %s", c.Summary.Provider)
	}

	return nil
}

// TemplatePath returns the location of the prompt template file.
func (c *Config) TemplatePath() string {
	return filepath.Join(c.Paths.Templates, "prompt.txt")
}
