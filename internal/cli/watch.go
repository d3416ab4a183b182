package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nalabook/mednote/internal/processor"
	"github.com/nalabook/mednote/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the audio directory and process new recordings automatically",
		Long: `Watch the audio recordings directory and run the full pipeline on
every new audio file that appears. Outputs are always saved; nothing is
printed to the terminal besides progress logs. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configFile)
			if err != nil {
				return err
			}

			proc, err := a.pipeline()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			handler := func(ctx context.Context, path string) error {
				_, err := proc.Process(ctx, path, processor.Options{
					Save: true,
					Docx: a.cfg.Summary.Docx,
				})
				return err
			}

			w, err := watcher.New(a.cfg.Paths.Audio, handler, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			a.log.Info(ctx, "Watching %s for new recordings. Press Ctrl+C to stop.", a.cfg.Paths.Audio)

			select {
			case <-sigChan:
				a.log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			cancel()
			return nil
		},
	}
}
