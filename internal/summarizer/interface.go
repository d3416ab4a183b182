package summarizer

import (
	"context"
	"fmt"

	"github.com/nalabook/mednote/internal/template"
)

// Summarizer turns a transcript into a formatted case note using a
// prompt template.
type Summarizer interface {
	Summarize(ctx context.Context, tmpl *template.Template, transcript string) (string, error)
}

// Error reports a summarization provider failure. There is no local
// fallback for this step; the transcript already persisted to disk is
// the partial result.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s summarization: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
