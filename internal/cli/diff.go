package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/diff"
	"github.com/arran4/golang-textedit/internal/config"
	"github.com/arran4/golang-textedit/internal/logger"
)

// Diff is a subcommand `textedit diff`
//
// Flags:
//
//	format: -f --format Output format: normal, inner, ed or json
//	original: Original file, or - for stdin
//	modified: Modified file, or - for stdin
//
// It reports whether the files differ.
func Diff(cfg *config.Config, format, original, modified string) (bool, error) {
	return runDiff(os.Stdin, os.Stdout, cfg, format, original, modified)
}

func runDiff(stdin io.Reader, stdout io.Writer, cfg *config.Config, format, original, modified string) (bool, error) {
	if original == "-" && modified == "-" {
		return false, fmt.Errorf("only one input can be read from stdin")
	}
	before, err := readModel(stdin, original, cfg.Diff.ReadOptions()...)
	if err != nil {
		return false, err
	}
	after, err := readModel(stdin, modified, cfg.Diff.ReadOptions()...)
	if err != nil {
		return false, err
	}
	d, err := computeDiff(cfg, before, after)
	if err != nil {
		return false, err
	}
	changed := len(d.Changes) > 0

	switch format {
	case "", "normal":
		_, err = fmt.Fprint(stdout, d.String())
	case "inner":
		for _, c := range d.Changes {
			if _, err = fmt.Fprintln(stdout, c); err != nil {
				break
			}
		}
		for _, m := range d.Moves {
			if _, err = fmt.Fprintln(stdout, m); err != nil {
				break
			}
		}
	case "ed":
		_, err = fmt.Fprint(stdout, textedit.NewEdScript(d, after.Lines()).String())
	case "json":
		var b []byte
		b, err = json.MarshalIndent(d, "", "  ")
		if err == nil {
			_, err = fmt.Fprintf(stdout, "%s\n", b)
		}
	default:
		return changed, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return changed, fmt.Errorf("error writing diff: %w", err)
	}
	return changed, nil
}

func computeDiff(cfg *config.Config, before, after textedit.TextModel) (textedit.LinesDiff, error) {
	algo, err := cfg.Diff.Algo()
	if err != nil {
		return textedit.LinesDiff{}, err
	}
	d, err := diff.Compute(algo, before.Lines(), after.Lines(), cfg.Diff.Options())
	if err != nil {
		return textedit.LinesDiff{}, fmt.Errorf("error computing diff: %w", err)
	}
	if d.QuitEarly {
		logger.Warnf("diff budget exhausted, result is not minimal")
	}
	return d, nil
}
