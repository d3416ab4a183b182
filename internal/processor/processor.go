package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Process runs the sequential pipeline for one audio file:
// transcribe, persist transcript, summarize, persist note, display.
// The transcript is written before summarization so a summarization
// failure still leaves it on disk as a usable partial result.
func (p *implProcessor) Process(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	start := time.Now()
	p.logger.Info(ctx, "Processing audio file: %s", filepath.Base(audioPath))

	result := &Result{}

	tr, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	result.Transcript = tr

	if opts.Save {
		path, err := p.store.SaveTranscript(audioPath, tr.Text)
		if err != nil {
			return result, fmt.Errorf("save transcript: %w", err)
		}
		result.TranscriptPath = path
		p.logger.Info(ctx, "Transcript saved to: %s", path)
	}

	note, err := p.summarizer.Summarize(ctx, p.template, tr.Text)
	if err != nil {
		return result, fmt.Errorf("generate case notes: %w", err)
	}
	result.Note = note

	if opts.Display {
		fmt.Fprintf(p.out, "\n%s\n\n", note)
	}

	if opts.Save {
		path, err := p.store.SaveNote(audioPath, note)
		if err != nil {
			return result, fmt.Errorf("save case notes: %w", err)
		}
		result.NotePath = path
		p.logger.Info(ctx, "Case notes saved to: %s", path)

		if opts.Docx {
			docxPath, err := p.store.ExportDocx(audioPath, note)
			if err != nil {
				// docx export is a convenience; markdown output already exists
				p.logger.Warn(ctx, "Docx export failed: %v", err)
			} else {
				result.DocxPath = docxPath
				p.logger.Info(ctx, "Docx exported to: %s", docxPath)
			}
		}
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(start).Round(time.Millisecond))
	return result, nil
}
