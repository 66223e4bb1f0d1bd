package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/editstack"
	"github.com/arran4/golang-textedit/internal/config"
)

// Replay is a subcommand `textedit replay`
//
// Flags:
//
//	history: -H --history History file to replay
//	undo: -u --undo Number of entries to undo after replaying all of them
//	input: Text the first entry applies to, or - for stdin
func Replay(cfg *config.Config, history string, undo int, input string) error {
	return runReplay(os.Stdin, os.Stdout, cfg, history, undo, input)
}

func runReplay(stdin io.Reader, stdout io.Writer, cfg *config.Config, history string, undo int, input string) error {
	model, err := readModel(stdin, input, cfg.Diff.ReadOptions()...)
	if err != nil {
		return err
	}
	encoded, err := readHistory(history)
	if err != nil {
		return err
	}
	stack := editstack.NewStack(max(cfg.Stack.Capacity, len(encoded)))
	stack.Load(encoded)
	// Load leaves every entry applied; rewind so they can be redone over the input.
	for stack.CanUndo() {
		stack.Undo()
	}

	text := strings.Join(model.Lines(), "\n")
	eol := model.EOL()
	for stack.CanRedo() {
		e, _ := stack.Redo()
		if text, err = e.Apply(text); err != nil {
			return fmt.Errorf("error redoing %s: %w", e, err)
		}
		eol = e.AfterEOL
	}
	for range undo {
		e, ok := stack.Undo()
		if !ok {
			return fmt.Errorf("cannot undo %d entries, history has %d", undo, stack.Len())
		}
		if text, err = e.Revert(text); err != nil {
			return fmt.Errorf("error undoing %s: %w", e, err)
		}
		eol = e.BeforeEOL
	}

	out := strings.Join(textedit.NewStringModel(text).Lines(), eol.Sequence())
	_, err = fmt.Fprint(stdout, out)
	return err
}
