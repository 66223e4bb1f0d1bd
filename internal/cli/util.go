package cli

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	textedit "github.com/arran4/golang-textedit"
)

// readModel loads a file, or stdin when name is "-".
func readModel(stdin io.Reader, name string, opts ...textedit.ReadOption) (*textedit.StringModel, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return textedit.NewStringModel(string(b)), nil
	}
	m, err := textedit.ReadModel(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("error with file %s: %w", name, err)
	}
	return m, nil
}

// readHistory reads a history file: one base64 encoded entry per line. A missing file is an
// empty history.
func readHistory(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening history %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var entries [][]byte
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		b, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("history %s line %d: %w", path, line, err)
		}
		entries = append(entries, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading history %s: %w", path, err)
	}
	return entries, nil
}

func writeHistory(path string, entries [][]byte) error {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(base64.StdEncoding.EncodeToString(e))
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing history %s: %w", path, err)
	}
	return nil
}
