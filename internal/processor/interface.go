package processor

import (
	"context"

	"github.com/nalabook/mednote/internal/transcriber"
)

// Options gates the output steps of a pipeline run.
type Options struct {
	Save    bool
	Display bool
	Docx    bool
}

// Result reports what a pipeline run produced. Paths are empty for
// steps that were gated off or did not run.
type Result struct {
	Transcript     transcriber.Result
	Note           string
	TranscriptPath string
	NotePath       string
	DocxPath       string
}

// Processor runs the transcribe-and-summarize pipeline for one audio file.
type Processor interface {
	Process(ctx context.Context, audioPath string, opts Options) (*Result, error)
}
