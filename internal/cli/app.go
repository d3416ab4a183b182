package cli

import (
	"fmt"
	"os"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
	"github.com/nalabook/mednote/internal/processor"
	"github.com/nalabook/mednote/internal/store"
	"github.com/nalabook/mednote/internal/summarizer"
	"github.com/nalabook/mednote/internal/template"
	"github.com/nalabook/mednote/internal/transcriber"
	"github.com/nalabook/mednote/pkg/executor"
)

// app bundles the resources every command needs. The full pipeline is
// built separately so listing files does not require a prompt template.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store store.Store
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)
	st := store.New(cfg.Paths, log)
	if err := st.EnsureDirs(); err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, store: st}, nil
}

// pipeline wires the pipeline components for a processing run.
func (a *app) pipeline() (processor.Processor, error) {
	tmpl, err := template.Load(a.cfg.TemplatePath())
	if err != nil {
		return nil, fmt.Errorf("load prompt template: %w", err)
	}

	sum, err := summarizer.New(a.cfg, a.log)
	if err != nil {
		return nil, err
	}

	trans := transcriber.New(a.cfg, executor.New(), a.log)

	return processor.New(trans, sum, a.store, tmpl, a.log, os.Stdout), nil
}
