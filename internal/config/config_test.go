package config

import (
	"errors"
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "unknown summary provider",
			config: Config{
				OpenAI:  OpenAIConfig{APIKey: "sk-test"},
				Summary: SummaryConfig{Provider: "claude"},
			},
			wantErr: true,
		},
		{
			name: "gemini provider without key",
			config: Config{
				OpenAI:  OpenAIConfig{APIKey: "sk-test"},
				Summary: SummaryConfig{Provider: ProviderGemini},
			},
			wantErr: true,
		},
		{
			name: "gemini provider with key",
			config: Config{
				OpenAI:  OpenAIConfig{APIKey: "sk-test"},
				Summary: SummaryConfig{Provider: ProviderGemini, GeminiAPIKey: "g-test"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{OpenAI: OpenAIConfig{APIKey: "sk-test"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Audio != "audio_recordings" {
		t.Errorf("Paths.Audio = %v, want %v", cfg.Paths.Audio, "audio_recordings")
	}
	if cfg.Paths.Notes != "case_notes" {
		t.Errorf("Paths.Notes = %v, want %v", cfg.Paths.Notes, "case_notes")
	}
	if cfg.OpenAI.AudioModel != "whisper-1" {
		t.Errorf("OpenAI.AudioModel = %v, want %v", cfg.OpenAI.AudioModel, "whisper-1")
	}
	if cfg.Summary.Provider != ProviderOpenAI {
		t.Errorf("Summary.Provider = %v, want %v", cfg.Summary.Provider, ProviderOpenAI)
	}
	if cfg.OpenAI.TimeoutSeconds != 600 {
		t.Errorf("OpenAI.TimeoutSeconds = %v, want %v", cfg.OpenAI.TimeoutSeconds, 600)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GPT_MODEL", "")

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  audio: "recordings"
  notes: "notes"

openai:
  model: "gpt-4o"
  timeout_seconds: 120

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Audio != "recordings" {
		t.Errorf("Paths.Audio = %v, want %v", cfg.Paths.Audio, "recordings")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %v, want %v", cfg.OpenAI.Model, "gpt-4o")
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %v, want %v", cfg.OpenAI.APIKey, "sk-test")
	}
	// unset sections still get defaults
	if cfg.Paths.Transcripts != "transcriptions" {
		t.Errorf("Paths.Transcripts = %v, want %v", cfg.Paths.Transcripts, "transcriptions")
	}
}

func TestLoadModelOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GPT_MODEL", "gpt-4o-mini")

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %v, want %v", cfg.OpenAI.Model, "gpt-4o-mini")
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load(DefaultPath)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Load() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for explicitly named missing file")
	}
}
