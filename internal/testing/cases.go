// Package testing holds fixture helpers shared by the diff tests.
package testing

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/tools/txtar"
)

// DiffCase is one txtar fixture: two inputs and the expected normal diff per algorithm.
// Expected[""] comes from expected.diff and applies to every algorithm; expected.<name>.diff
// overrides it for one algorithm.
type DiffCase struct {
	Name     string
	Original []string
	Modified []string
	Expected map[string]string
}

// Want returns the expected diff for the named algorithm.
func (c DiffCase) Want(algorithm string) (string, bool) {
	if s, ok := c.Expected[algorithm]; ok {
		return s, true
	}
	s, ok := c.Expected[""]
	return s, ok
}

// SplitLines splits s on "\n". A trailing newline does not start another line and the empty
// string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ParseDiffCase reads a fixture holding input1.txt, input2.txt and any expected diffs.
func ParseDiffCase(name string, content []byte) (DiffCase, error) {
	content = []byte(strings.ReplaceAll(string(content), "\r\n", "\n"))
	a := txtar.Parse(content)
	c := DiffCase{Name: name, Expected: map[string]string{}}
	var haveOriginal, haveModified bool
	for _, f := range a.Files {
		switch n := strings.TrimSpace(f.Name); {
		case n == "input1.txt":
			c.Original, haveOriginal = SplitLines(string(f.Data)), true
		case n == "input2.txt":
			c.Modified, haveModified = SplitLines(string(f.Data)), true
		case n == "expected.diff":
			c.Expected[""] = strings.TrimSpace(string(f.Data))
		case strings.HasPrefix(n, "expected.") && strings.HasSuffix(n, ".diff"):
			algo := strings.TrimSuffix(strings.TrimPrefix(n, "expected."), ".diff")
			c.Expected[algo] = strings.TrimSpace(string(f.Data))
		}
	}
	if !haveOriginal || !haveModified {
		return DiffCase{}, fmt.Errorf("%s: missing input1.txt or input2.txt", name)
	}
	return c, nil
}

// LoadDiffCases parses every .txtar file of dir.
func LoadDiffCases(fsys fs.FS, dir string) ([]DiffCase, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var cases []DiffCase
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txtar") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		c, err := ParseDiffCase(e.Name(), content)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}
