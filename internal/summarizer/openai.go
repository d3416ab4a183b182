package summarizer

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/internal/template"
)

type openAISummarizer struct {
	client openai.Client
	model  string
	logger logger.Logger
}

func newOpenAISummarizer(cfg config.OpenAIConfig, log logger.Logger) *openAISummarizer {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAISummarizer{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		logger: log,
	}
}

func (s *openAISummarizer) Summarize(ctx context.Context, tmpl *template.Template, transcript string) (string, error) {
	prompt := tmpl.Render(transcript)
	s.logger.Info(ctx, "Generating case notes with model: %s", s.model)

	response, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(tmpl.System),
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(4000),
	})
	if err != nil {
		return "", &Error{Provider: config.ProviderOpenAI, Err: err}
	}

	if len(response.Choices) == 0 {
		return "", &Error{Provider: config.ProviderOpenAI, Err: errors.New("response has no choices")}
	}

	note := strings.TrimSpace(response.Choices[0].Message.Content)
	if note == "" {
		return "", &Error{Provider: config.ProviderOpenAI, Err: errors.New("completion is empty")}
	}

	return note, nil
}
