package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arran4/golang-textedit/editstack"
)

// Inspect is a subcommand `textedit inspect`
//
// Flags:
//
//	format: -f --format Output format: text or json
//	history: History file to print
func Inspect(format, history string) error {
	return runInspect(os.Stdout, format, history)
}

func runInspect(stdout io.Writer, format, history string) error {
	encoded, err := readHistory(history)
	if err != nil {
		return err
	}
	var entries []*editstack.SingleModelEditStackData
	for i, b := range encoded {
		e, err := editstack.Deserialize(b)
		if err != nil {
			return fmt.Errorf("history %s entry %d: %w", history, i+1, err)
		}
		entries = append(entries, e)
	}

	switch format {
	case "", "text":
		for i, e := range entries {
			_, _ = fmt.Fprintf(stdout, "entry %d: version %d -> %d, eol %s -> %s\n", i+1, e.BeforeVersionID, e.AfterVersionID, e.BeforeEOL, e.AfterEOL)
			for _, s := range e.BeforeSelections {
				_, _ = fmt.Fprintf(stdout, "\tbefore selection %s\n", s)
			}
			for _, s := range e.AfterSelections {
				_, _ = fmt.Fprintf(stdout, "\tafter selection %s\n", s)
			}
			for _, c := range e.Changes {
				_, _ = fmt.Fprintf(stdout, "\t%s\n", c)
			}
		}
	case "json":
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error serializing %s: %w", history, err)
		}
		_, _ = fmt.Fprintf(stdout, "%s\n", b)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
