package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/pkg/executor"
)

// whisperEngine runs a whisper.cpp CLI binary against a local ggml model.
// The model file is fetched once on first use and cached on disk.
type whisperEngine struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger

	initOnce sync.Once
	initErr  error
}

func newWhisperEngine(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) *whisperEngine {
	return &whisperEngine{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (e *whisperEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	e.initOnce.Do(func() {
		e.initErr = e.ensureModel(ctx)
	})
	if e.initErr != nil {
		return "", fmt.Errorf("load whisper model: %w", e.initErr)
	}

	// -nt: plain text on stdout, no timestamps
	// -np: suppress progress output
	args := []string{
		"-m", e.cfg.ModelPath,
		"-f", audioPath,
		"-l", e.cfg.Language,
		"-nt",
		"-np",
	}

	out, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper-cli: %w", err)
	}

	text := strings.TrimSpace(out)
	if text == "" {
		return "", errors.New("whisper-cli produced no output")
	}

	return text, nil
}
