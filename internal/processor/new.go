package processor

import (
	"io"

	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/internal/store"
	"github.com/nalabook/mednote/internal/summarizer"
	"github.com/nalabook/mednote/internal/template"
	"github.com/nalabook/mednote/internal/transcriber"
)

type implProcessor struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	store       store.Store
	template    *template.Template
	logger      logger.Logger
	out         io.Writer
}

// New creates a new Processor instance. Case notes are printed to out
// when display is enabled.
func New(
	t transcriber.Transcriber,
	s summarizer.Summarizer,
	st store.Store,
	tmpl *template.Template,
	log logger.Logger,
	out io.Writer,
) Processor {
	return &implProcessor{
		transcriber: t,
		summarizer:  s,
		store:       st,
		template:    tmpl,
		logger:      log,
		out:         out,
	}
}
