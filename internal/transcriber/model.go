package transcriber

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ensureModel makes the local whisper model available, downloading it on
// first fallback use. A partial download never looks cached: the file is
// written to a temp name and renamed only when complete.
func (e *whisperEngine) ensureModel(ctx context.Context) error {
	if stat, err := os.Stat(e.cfg.ModelPath); err == nil && stat.Size() > 0 {
		return nil
	}

	if e.cfg.ModelURL == "" {
		return fmt.Errorf("model %s not found and no download URL configured", e.cfg.ModelPath)
	}

	dir := filepath.Dir(e.cfg.ModelPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	e.logger.Info(ctx, "Downloading whisper model: %s", e.cfg.ModelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.ModelURL, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("download model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download model: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(dir, "model-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write model file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model file: %w", err)
	}

	if err := os.Rename(tmp.Name(), e.cfg.ModelPath); err != nil {
		return fmt.Errorf("move model into place: %w", err)
	}

	e.logger.Info(ctx, "Whisper model saved to: %s", e.cfg.ModelPath)
	return nil
}
