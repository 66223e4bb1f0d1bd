package textedit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextChange replaces OldText at OldOffset of the old text with NewText, which starts at
// NewOffset of the new text. Offsets count code points.
type TextChange struct {
	OldOffset int
	OldText   string
	NewOffset int
	NewText   string
}

func (c TextChange) OldLength() int {
	return utf8.RuneCountInString(c.OldText)
}

func (c TextChange) NewLength() int {
	return utf8.RuneCountInString(c.NewText)
}

func (c TextChange) OldEnd() int {
	return c.OldOffset + c.OldLength()
}

func (c TextChange) NewEnd() int {
	return c.NewOffset + c.NewLength()
}

// OldPosition locates the change in the text it applies to.
func (c TextChange) OldPosition(oldText string) (Position, error) {
	return PositionAt(oldText, c.OldOffset)
}

// NewPosition locates the change in the text it produced.
func (c TextChange) NewPosition(newText string) (Position, error) {
	return PositionAt(newText, c.NewOffset)
}

// Invert returns the change that undoes c.
func (c TextChange) Invert() TextChange {
	return TextChange{
		OldOffset: c.NewOffset,
		OldText:   c.NewText,
		NewOffset: c.OldOffset,
		NewText:   c.OldText,
	}
}

func (c TextChange) String() string {
	switch {
	case c.OldText == "":
		return fmt.Sprintf("insert@%d %q", c.OldOffset, c.NewText)
	case c.NewText == "":
		return fmt.Sprintf("delete@%d %q", c.OldOffset, c.OldText)
	}
	return fmt.Sprintf("replace@%d %q -> %q", c.OldOffset, c.OldText, c.NewText)
}

// ValidateChanges checks that a batch is ordered left to right, does not overlap, and that
// every NewOffset agrees with the length delta of the changes before it.
func ValidateChanges(changes []TextChange) error {
	delta := 0
	for i, c := range changes {
		if c.OldOffset < 0 || c.NewOffset < 0 {
			return fmt.Errorf("%w: change %d has a negative offset", ErrInvalidChange, i)
		}
		if i > 0 {
			prev := changes[i-1]
			if c.OldOffset <= prev.OldOffset || c.OldOffset < prev.OldEnd() {
				return fmt.Errorf("%w: change %d at %d overlaps or precedes change %d at %d", ErrInvalidChange, i, c.OldOffset, i-1, prev.OldOffset)
			}
		}
		if c.NewOffset != c.OldOffset+delta {
			return fmt.Errorf("%w: change %d new offset %d, expected %d", ErrInvalidChange, i, c.NewOffset, c.OldOffset+delta)
		}
		delta += c.NewLength() - c.OldLength()
	}
	return nil
}

// ApplyTextChanges applies a validated batch to text. Each change's OldText must match the
// text found at its offset.
func ApplyTextChanges(text string, changes []TextChange) (string, error) {
	if err := ValidateChanges(changes); err != nil {
		return "", err
	}
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	pos := 0
	for i, c := range changes {
		end := c.OldOffset + c.OldLength()
		if end > len(runes) {
			return "", fmt.Errorf("%w: change %d ends at %d, text has %d", ErrOffsetOutOfRange, i, end, len(runes))
		}
		if string(runes[c.OldOffset:end]) != c.OldText {
			return "", fmt.Errorf("%w: change %d at %d expected %q", ErrTextMismatch, i, c.OldOffset, c.OldText)
		}
		sb.WriteString(string(runes[pos:c.OldOffset]))
		sb.WriteString(c.NewText)
		pos = end
	}
	sb.WriteString(string(runes[pos:]))
	return sb.String(), nil
}

// RevertTextChanges undoes a batch previously applied with ApplyTextChanges.
func RevertTextChanges(text string, changes []TextChange) (string, error) {
	inverted := make([]TextChange, len(changes))
	for i, c := range changes {
		inverted[i] = c.Invert()
	}
	return ApplyTextChanges(text, inverted)
}

// PositionAt converts a code point offset into a Position. '\n' ends a line.
func PositionAt(text string, offset int) (Position, error) {
	if offset < 0 {
		return Position{}, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, offset)
	}
	p := Position{Line: 1, Column: 1}
	n := 0
	for _, r := range text {
		if n == offset {
			return p, nil
		}
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		n++
	}
	if n == offset {
		return p, nil
	}
	return Position{}, fmt.Errorf("%w: %d beyond %d", ErrOffsetOutOfRange, offset, n)
}

// OffsetAt converts a Position into a code point offset. '\n' ends a line.
func OffsetAt(text string, p Position) (int, error) {
	line, col, n := 1, 1, 0
	for _, r := range text {
		if line == p.Line && col == p.Column {
			return n, nil
		}
		if r == '\n' {
			if line == p.Line {
				break
			}
			line++
			col = 1
		} else {
			col++
		}
		n++
	}
	if line == p.Line && col == p.Column {
		return n, nil
	}
	return 0, fmt.Errorf("%w: position %s", ErrOffsetOutOfRange, p)
}
