package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/nalabook/mednote/internal/config"
)

type openAIEngine struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func newOpenAIEngine(cfg config.OpenAIConfig) *openAIEngine {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIEngine{
		client:  openai.NewClient(opts...),
		model:   cfg.AudioModel,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// Transcribe sends the audio file to the OpenAI transcriptions endpoint.
// A single attempt; recovery is the caller's local fallback.
func (e *openAIEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	response, err := e.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:           file,
		Model:          openai.AudioModel(e.model),
		ResponseFormat: openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcriptions API: %w", err)
	}

	text := strings.TrimSpace(response.Text)
	if text == "" {
		return "", errors.New("transcription response is empty")
	}

	return text, nil
}
