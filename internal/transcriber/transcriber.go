package transcriber

import (
	"context"
	"path/filepath"
)

// Transcribe attempts the remote API once and, on any failure, runs the
// local whisper model as the sole recovery path.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	t.logger.Info(ctx, "Transcribing: %s", filepath.Base(audioPath))

	text, remoteErr := t.remote.Transcribe(ctx, audioPath)
	if remoteErr == nil {
		t.logger.Info(ctx, "Transcription completed via OpenAI API")
		return Result{Text: text, Engine: EngineRemote}, nil
	}

	t.logger.Warn(ctx, "API transcription failed, falling back to local whisper model: %v", remoteErr)

	text, localErr := t.local.Transcribe(ctx, audioPath)
	if localErr != nil {
		return Result{}, &Error{RemoteErr: remoteErr, LocalErr: localErr}
	}

	t.logger.Info(ctx, "Transcription completed via local whisper model")
	return Result{Text: text, Engine: EngineLocal}, nil
}
