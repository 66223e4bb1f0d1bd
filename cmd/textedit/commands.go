package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arran4/golang-textedit/internal/cli"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "diff <original> <modified>",
		Short: "Print the line differences between two files",
		Long:  "Print the line differences between two files. The exit status is 1 when the files differ.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := cli.Diff(flags.cfg, format, args[0], args[1])
			if err != nil {
				return err
			}
			if changed {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "normal", "Output format: normal, inner, ed or json")
	return cmd
}

func newRecordCmd(flags *rootFlags) *cobra.Command {
	var history string
	var beforeVersion, afterVersion int32
	cmd := &cobra.Command{
		Use:   "record <original> <modified>",
		Short: "Append the edit between two files to a history file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Record(flags.cfg, history, beforeVersion, afterVersion, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&history, "history", "H", "", "History file to append the entry to")
	cmd.Flags().Int32Var(&beforeVersion, "before-version", 0, "Version id of the original")
	cmd.Flags().Int32Var(&afterVersion, "after-version", 0, "Version id of the modified text")
	_ = cmd.MarkFlagRequired("history")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect <history>",
		Short: "Print the entries of a history file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Inspect(format, args[0])
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	return cmd
}

func newReplayCmd(flags *rootFlags) *cobra.Command {
	var history string
	var undo int
	cmd := &cobra.Command{
		Use:   "replay <input>",
		Short: "Redo every entry of a history over a file, then undo the last ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Replay(flags.cfg, history, undo, args[0])
		},
	}
	cmd.Flags().StringVarP(&history, "history", "H", "", "History file to replay")
	cmd.Flags().IntVarP(&undo, "undo", "u", 0, "Number of entries to undo after replaying")
	_ = cmd.MarkFlagRequired("history")
	return cmd
}
