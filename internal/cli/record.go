package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arran4/golang-textedit/editstack"
	"github.com/arran4/golang-textedit/internal/config"
)

// Record is a subcommand `textedit record`
//
// Flags:
//
//	history: -H --history History file to append the entry to
//	beforeVersion: --before-version Version id of the original
//	afterVersion: --after-version Version id of the modified text
//	original: Original file, or - for stdin
//	modified: Modified file, or - for stdin
func Record(cfg *config.Config, history string, beforeVersion, afterVersion int32, original, modified string) error {
	return runRecord(os.Stdin, os.Stdout, cfg, history, beforeVersion, afterVersion, original, modified)
}

func runRecord(stdin io.Reader, stdout io.Writer, cfg *config.Config, history string, beforeVersion, afterVersion int32, original, modified string) error {
	if history == "" {
		return fmt.Errorf("no history file given")
	}
	if original == "-" && modified == "-" {
		return fmt.Errorf("only one input can be read from stdin")
	}
	before, err := readModel(stdin, original, cfg.Diff.ReadOptions()...)
	if err != nil {
		return err
	}
	after, err := readModel(stdin, modified, cfg.Diff.ReadOptions()...)
	if err != nil {
		return err
	}
	d, err := computeDiff(cfg, before, after)
	if err != nil {
		return err
	}
	entry, err := editstack.FromLinesDiff(d, before, after, beforeVersion, afterVersion)
	if err != nil {
		return fmt.Errorf("error building entry: %w", err)
	}

	encoded, err := readHistory(history)
	if err != nil {
		return err
	}
	stack := editstack.NewStack(cfg.Stack.Capacity)
	if dropped := len(encoded) - stack.Load(encoded); dropped > 0 {
		_, _ = fmt.Fprintf(stdout, "Dropped %d unreadable entries from %s\n", dropped, history)
	}
	stack.Push(entry)
	if err := writeHistory(history, stack.Save()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Recorded %s in %s (%d entries)\n", entry, history, stack.Len())
	return nil
}
