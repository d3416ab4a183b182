package transcriber

import (
	"context"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/pkg/executor"
)

// engine is a single transcription backend.
type engine interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type implTranscriber struct {
	remote engine
	local  engine
	logger logger.Logger
}

// New creates a Transcriber that tries the OpenAI API first and falls
// back to a local whisper-cli run on failure.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		remote: newOpenAIEngine(cfg.OpenAI),
		local:  newWhisperEngine(cfg.Whisper, exec, log),
		logger: log,
	}
}
