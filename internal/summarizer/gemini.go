package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/internal/template"
)

type geminiSummarizer struct {
	apiKey string
	model  string
	logger logger.Logger
}

func newGeminiSummarizer(cfg config.SummaryConfig, log logger.Logger) *geminiSummarizer {
	return &geminiSummarizer{
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		logger: log,
	}
}

func (s *geminiSummarizer) Summarize(ctx context.Context, tmpl *template.Template, transcript string) (string, error) {
	prompt := tmpl.Render(transcript)
	s.logger.Info(ctx, "Generating case notes with model: %s", s.model)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &Error{Provider: config.ProviderGemini, Err: fmt.Errorf("create client: %w", err)}
	}

	generateCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(tmpl.System, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), generateCfg)
	if err != nil {
		return "", &Error{Provider: config.ProviderGemini, Err: err}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &Error{Provider: config.ProviderGemini, Err: errors.New("empty response")}
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}

	note := strings.TrimSpace(b.String())
	if note == "" {
		return "", &Error{Provider: config.ProviderGemini, Err: errors.New("response has no text parts")}
	}

	return note, nil
}
