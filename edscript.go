package textedit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EdScript is a diff in the RCS edit script form. "dN M" deletes M lines starting at line N
// of the original. "aN M" inserts the M text lines that follow it after line N of the original.
// Commands are ordered by their original line.
type EdScript []EdCommand

// EdCommand is one command of an EdScript.
type EdCommand interface {
	fmt.Stringer
	// StartLine is the original line the command refers to.
	StartLine() int
}

// EdDelete removes Count lines starting at Start.
type EdDelete struct {
	Start int
	Count int
}

func (d EdDelete) StartLine() int {
	return d.Start
}

func (d EdDelete) String() string {
	return fmt.Sprintf("d%d %d", d.Start, d.Count)
}

var _ EdCommand = EdDelete{}

// EdAdd inserts Lines after original line After. After is 0 to insert at the top.
type EdAdd struct {
	After int
	Lines []string
}

func (a EdAdd) StartLine() int {
	return a.After
}

func (a EdAdd) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a%d %d", a.After, len(a.Lines))
	for _, l := range a.Lines {
		sb.WriteString("\n")
		sb.WriteString(l)
	}
	return sb.String()
}

var _ EdCommand = EdAdd{}

func (s EdScript) String() string {
	var sb strings.Builder
	for _, c := range s {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

var _ fmt.Stringer = (EdScript)(nil)

// NewEdScript converts d into an edit script. modified supplies the inserted text. A
// replacement becomes a delete followed by an add after the last deleted line.
func NewEdScript(d LinesDiff, modified []string) EdScript {
	var s EdScript
	for _, c := range d.Changes {
		if !c.Original.IsEmpty() {
			s = append(s, EdDelete{Start: c.Original.Start, Count: c.Original.Length()})
		}
		if !c.Modified.IsEmpty() {
			s = append(s, EdAdd{
				After: c.Original.EndExclusive - 1,
				Lines: append([]string(nil), c.Modified.Slice(modified)...),
			})
		}
	}
	return s
}

// ParseEdScript reads an edit script as written by EdScript.String.
func ParseEdScript(r io.Reader) (EdScript, error) {
	scanner := bufio.NewScanner(r)
	var s EdScript
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var op rune
		var start, count int
		if _, err := fmt.Sscanf(line, "%c%d %d", &op, &start, &count); err != nil {
			return nil, fmt.Errorf("invalid command line %q: %w", line, err)
		}
		if start < 0 || count < 0 {
			return nil, fmt.Errorf("invalid command line %q: negative number", line)
		}
		switch op {
		case 'd':
			s = append(s, EdDelete{Start: start, Count: count})
		case 'a':
			lines := make([]string, 0, count)
			for range count {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading add lines for command %s", line)
				}
				lines = append(lines, scanner.Text())
			}
			s = append(s, EdAdd{After: start, Lines: lines})
		default:
			return nil, fmt.Errorf("unknown command type: %c", op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply runs the script over original and returns the edited lines. Commands out of order or
// past the end of original are an ErrInvalidDiff.
func (s EdScript) Apply(original []string) ([]string, error) {
	out := make([]string, 0, len(original))
	// next is the first original line not yet copied or deleted.
	next := 1
	for i, cmd := range s {
		switch c := cmd.(type) {
		case EdDelete:
			if c.Start < next || c.Count <= 0 || c.Start+c.Count-1 > len(original) {
				return nil, fmt.Errorf("%w: command %d (%s) is out of range", ErrInvalidDiff, i, c)
			}
			out = append(out, original[next-1:c.Start-1]...)
			next = c.Start + c.Count
		case EdAdd:
			if c.After < next-1 || c.After > len(original) {
				return nil, fmt.Errorf("%w: command %d (a%d) is out of range", ErrInvalidDiff, i, c.After)
			}
			out = append(out, original[next-1:c.After]...)
			next = c.After + 1
			out = append(out, c.Lines...)
		default:
			return nil, fmt.Errorf("%w: unknown command %T", ErrInvalidDiff, cmd)
		}
	}
	return append(out, original[next-1:]...), nil
}
