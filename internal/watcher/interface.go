package watcher

import "context"

// Watcher defines the interface for audio directory monitoring.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles newly detected audio files.
type EventHandler func(ctx context.Context, filePath string) error
