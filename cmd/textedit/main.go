// Command textedit diffs text files and records, inspects and replays undo histories.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootCmd := &cobra.Command{
		Use:          "textedit [command]",
		Short:        "Line diffs and undo histories for text files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.load(cmd)
		},
	}
	flags.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newDiffCmd(&flags))
	rootCmd.AddCommand(newRecordCmd(&flags))
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newReplayCmd(&flags))
	return rootCmd
}
