package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nalabook/mednote/internal/processor"
)

func newTranscribeCmd() *cobra.Command {
	var (
		listFiles bool
		noSave    bool
		noDisplay bool
		docx      bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe [audio-file]",
		Short: "Transcribe an audio recording and generate structured case notes",
		Long: `Transcribe an audio recording and generate structured case notes.

If no audio file is specified and several are available, you are
prompted to select one. Bare filenames are resolved inside the audio
recordings directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configFile)
			if err != nil {
				return err
			}

			if listFiles {
				files, err := a.store.ListAudio()
				if err != nil {
					return err
				}
				if len(files) == 0 {
					cmd.Printf("No audio files found in %s.\n", a.cfg.Paths.Audio)
					return nil
				}
				cmd.Println("Available audio files:")
				for i, f := range files {
					cmd.Printf("%d. %s\n", i+1, filepath.Base(f))
				}
				return nil
			}

			audioPath, err := a.selectAudio(cmd, args)
			if err != nil {
				return err
			}

			proc, err := a.pipeline()
			if err != nil {
				return err
			}

			result, err := proc.Process(cmd.Context(), audioPath, processor.Options{
				Save:    !noSave,
				Display: !noDisplay,
				Docx:    docx,
			})
			if err != nil {
				return err
			}

			if result.NotePath != "" {
				cmd.Printf("Case notes saved to: %s\n", result.NotePath)
			}
			cmd.Println("Processing complete.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listFiles, "list", "l", false, "list available audio files and exit")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not write transcript or case note files")
	cmd.Flags().BoolVar(&noDisplay, "no-display", false, "do not print the generated case notes")
	cmd.Flags().BoolVar(&docx, "docx", false, "also export the case notes as a .docx file")

	return cmd
}

// selectAudio resolves the file argument, or interactively selects one
// from the audio directory when no argument was given.
func (a *app) selectAudio(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return a.store.ResolveAudio(args[0])
	}

	files, err := a.store.ListAudio()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no audio files found in %s; add recordings and try again", a.cfg.Paths.Audio)
	}
	if len(files) == 1 {
		return files[0], nil
	}

	cmd.Println("Available audio files:")
	for i, f := range files {
		cmd.Printf("%d. %s\n", i+1, filepath.Base(f))
	}
	cmd.Print("Select a file by number: ")

	var selection int
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &selection); err != nil {
		return "", fmt.Errorf("read selection: %w", err)
	}
	if selection < 1 || selection > len(files) {
		return "", fmt.Errorf("invalid selection: %d", selection)
	}

	return files[selection-1], nil
}
