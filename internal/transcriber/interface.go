package transcriber

import (
	"context"
	"fmt"
)

// Engine identifies which transcription path produced a result.
type Engine string

const (
	EngineRemote Engine = "openai"
	EngineLocal  Engine = "whisper-cli"
)

// Result carries a transcript and the engine that produced it.
type Result struct {
	Text   string
	Engine Engine
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Result, error)
}

// Error reports that transcription failed on both the remote and the
// local fallback path.
type Error struct {
	RemoteErr error
	LocalErr  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcription failed: remote: %v; local fallback: %v", e.RemoteErr, e.LocalErr)
}

func (e *Error) Unwrap() error {
	return e.LocalErr
}
