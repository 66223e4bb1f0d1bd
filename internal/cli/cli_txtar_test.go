package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"golang.org/x/tools/txtar"

	"github.com/arran4/golang-textedit/internal/config"
)

func TestCliTxtar(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			runCliTest(t, file)
		})
	}
}

func runCliTest(t *testing.T, path string) {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}

	tmpDir := t.TempDir()
	var testCommands []string
	var expectedStdout string
	for _, f := range archive.Files {
		switch {
		case f.Name == "tests.txt":
			for _, line := range strings.Split(string(f.Data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					testCommands = append(testCommands, line)
				}
			}
		case f.Name == "expected.stdout":
			expectedStdout = string(f.Data)
		case strings.HasPrefix(f.Name, "expected."):
		default:
			if err := os.WriteFile(filepath.Join(tmpDir, f.Name), f.Data, 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	t.Chdir(tmpDir)

	var stdout bytes.Buffer
	for _, cmd := range testCommands {
		if err := runCommand(&stdout, strings.Fields(cmd)); err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
	}
	if got := stdout.String(); got != expectedStdout {
		t.Errorf("stdout mismatch.\nGot:\n%s\nWant:\n%s", got, expectedStdout)
	}
}

// runCommand runs one fixture command line. Flags mirror the textedit command.
func runCommand(stdout io.Writer, args []string) error {
	cfg := config.NewDefaultConfig()
	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.StringVarP(&cfg.Diff.Algorithm, "algorithm", "a", cfg.Diff.Algorithm, "algorithm")
	format := fs.StringP("format", "f", "", "format")
	history := fs.StringP("history", "H", "", "history")
	undo := fs.IntP("undo", "u", 0, "undo")
	beforeVersion := fs.Int32("before-version", 0, "before version")
	afterVersion := fs.Int32("after-version", 0, "after version")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	rest := fs.Args()

	switch args[0] {
	case "diff":
		_, err := runDiff(strings.NewReader(""), stdout, cfg, *format, rest[0], rest[1])
		return err
	case "record":
		return runRecord(strings.NewReader(""), stdout, cfg, *history, *beforeVersion, *afterVersion, rest[0], rest[1])
	case "inspect":
		return runInspect(stdout, *format, rest[0])
	case "replay":
		return runReplay(strings.NewReader(""), stdout, cfg, *history, *undo, rest[0])
	}
	return pflag.ErrHelp
}
