package textedit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStringModel(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
		eol   EOL
	}{
		{name: "empty", text: "", lines: []string{""}, eol: LF},
		{name: "no trailing newline", text: "a\nb", lines: []string{"a", "b"}, eol: LF},
		{name: "trailing newline", text: "a\nb\n", lines: []string{"a", "b", ""}, eol: LF},
		{name: "crlf", text: "a\r\nb\r\n", lines: []string{"a", "b", ""}, eol: CRLF},
		{name: "leading crlf", text: "\r\nx", lines: []string{"", "x"}, eol: CRLF},
		{name: "first break decides", text: "a\nb\r\nc", lines: []string{"a", "b", "c"}, eol: LF},
		{name: "lone cr", text: "a\rb", lines: []string{"a", "b"}, eol: LF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStringModel(tt.text)
			if diff := cmp.Diff(tt.lines, m.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			if m.EOL() != tt.eol {
				t.Errorf("EOL() = %s, want %s", m.EOL(), tt.eol)
			}
		})
	}
}

func TestStringModelTextRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "a\nb\n", "a\r\nb\r\n\r\n"} {
		if got := NewStringModel(text).Text(); got != text {
			t.Errorf("Text() = %q, want %q", got, text)
		}
	}
}

func TestReadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, useMmap := range []bool{false, true} {
		m, err := ReadModel(path, WithMmap(useMmap))
		if err != nil {
			t.Fatalf("ReadModel(mmap=%v): %v", useMmap, err)
		}
		if diff := cmp.Diff([]string{"one", "two", ""}, m.Lines()); diff != "" {
			t.Errorf("mmap=%v Lines() mismatch (-want +got):\n%s", useMmap, diff)
		}
		if m.EOL() != CRLF {
			t.Errorf("mmap=%v EOL() = %s", useMmap, m.EOL())
		}
	}
	if _, err := ReadModel(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("ReadModel of a missing file succeeded")
	}
}
