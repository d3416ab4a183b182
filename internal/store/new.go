package store

import (
	"time"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
)

type implStore struct {
	paths  config.PathsConfig
	logger logger.Logger
	now    func() time.Time
}

// New creates a new Store instance.
func New(paths config.PathsConfig, log logger.Logger) Store {
	return &implStore{
		paths:  paths,
		logger: log,
		now:    time.Now,
	}
}
