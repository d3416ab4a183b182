package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

// Execute runs the CLI. Any pipeline or configuration failure exits
// non-zero.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mednote",
		Short: "Transcribe audio recordings and generate structured case notes",
		Long: `mednote transcribes audio recordings and generates structured
case notes from them.

Recordings are transcribed through the OpenAI API, with a local whisper
model as fallback. The transcript is rendered into a user-editable
prompt template and summarized into a case note. Both outputs are saved
as timestamped markdown files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "path to the config file")

	root.AddCommand(newTranscribeCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newVersionCmd())

	return root
}
