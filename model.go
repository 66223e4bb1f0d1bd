package textedit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/mmap"
)

// TextModel is the read-only view of a buffer the diff and edit stack consume.
type TextModel interface {
	Lines() []string
	EOL() EOL
}

// StringModel is a TextModel over an in-memory text.
type StringModel struct {
	lines []string
	eol   EOL
}

var _ TextModel = (*StringModel)(nil)

// NewStringModel splits text into lines. The line ending mode is CRLF when the first line
// break is "\r\n". A lone "\r" also ends a line. A text ending in a line break has an empty
// last line, so the round trip through Text is exact for single-style line endings.
func NewStringModel(text string) *StringModel {
	m := &StringModel{eol: LF}
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		m.eol = CRLF
	}
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			m.lines = append(m.lines, text[start:i])
			start = i + 1
		case '\r':
			m.lines = append(m.lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	m.lines = append(m.lines, text[start:])
	return m
}

func (m *StringModel) Lines() []string {
	return m.lines
}

func (m *StringModel) EOL() EOL {
	return m.eol
}

// Text joins the lines with the model's line ending.
func (m *StringModel) Text() string {
	return strings.Join(m.lines, m.eol.Sequence())
}

// ReadOption configures ReadModel behavior.
type ReadOption func(*readOptions)

type readOptions bool

// WithMmap toggles mmap-backed file reads in ReadModel.
func WithMmap(enabled bool) ReadOption {
	return func(options *readOptions) {
		*options = readOptions(enabled)
	}
}

// ReadModel reads a file into a StringModel.
//
// By default ReadModel uses os.Open. Use WithMmap(true) to map the file using
// golang.org/x/exp/mmap instead.
func ReadModel(path string, opts ...ReadOption) (*StringModel, error) {
	var options readOptions
	for _, opt := range opts {
		opt(&options)
	}

	r, err := openReader(path, bool(options))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return NewStringModel(string(b)), nil
}

type mmapReadCloser struct {
	*io.SectionReader
	closer func() error
}

func (m *mmapReadCloser) Close() error {
	return m.closer()
}

func openReader(path string, useMmap bool) (io.ReadCloser, error) {
	if useMmap {
		r, err := mmap.Open(path)
		if err != nil {
			return nil, err
		}
		return &mmapReadCloser{
			SectionReader: io.NewSectionReader(r, 0, int64(r.Len())),
			closer:        r.Close,
		}, nil
	}
	return os.Open(path)
}
