package textedit

import (
	"fmt"
	"strings"
)

// Position is a 1-based (line, column) location in a text. Columns count code points.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

// Compare orders positions by line, then column.
func (p Position) Compare(o Position) int {
	switch {
	case p.Line < o.Line:
		return -1
	case p.Line > o.Line:
		return 1
	case p.Column < o.Column:
		return -1
	case p.Column > o.Column:
		return 1
	}
	return 0
}

func (p Position) IsBefore(o Position) bool {
	return p.Compare(o) < 0
}

func (p Position) IsBeforeOrEqual(o Position) bool {
	return p.Compare(o) <= 0
}

// Range spans from Start to End, Start <= End.
type Range struct {
	Start Position
	End   Position
}

// NewRange returns the range between a and b regardless of their order.
func NewRange(a, b Position) Range {
	if b.IsBefore(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) ContainsPosition(p Position) bool {
	return r.Start.IsBeforeOrEqual(p) && p.IsBeforeOrEqual(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d -> %d,%d]", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}

// Direction records which end of a Selection is the anchor.
type Direction uint8

const (
	// LTR selections are anchored at Start and active at End.
	LTR Direction = iota
	// RTL selections are anchored at End and active at Start.
	RTL
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Selection is a Range plus the end the cursor is on.
type Selection struct {
	Range
	Direction Direction
}

// NewSelection builds a selection from the anchor and the active (cursor) position.
func NewSelection(anchor, active Position) Selection {
	if active.IsBefore(anchor) {
		return Selection{Range: Range{Start: active, End: anchor}, Direction: RTL}
	}
	return Selection{Range: Range{Start: anchor, End: active}, Direction: LTR}
}

// CursorSelection is an empty selection at p.
func CursorSelection(p Position) Selection {
	return Selection{Range: Range{Start: p, End: p}}
}

func (s Selection) Anchor() Position {
	if s.Direction == RTL {
		return s.End
	}
	return s.Start
}

func (s Selection) Active() Position {
	if s.Direction == RTL {
		return s.Start
	}
	return s.End
}

func (s Selection) String() string {
	return fmt.Sprintf("%s %s", s.Range, s.Direction)
}

// EOL is the line ending mode of a buffer.
type EOL uint8

const (
	LF EOL = iota
	CRLF
)

func (e EOL) String() string {
	switch e {
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	}
	return fmt.Sprintf("EOL(%d)", uint8(e))
}

// Sequence returns the separator written between lines.
func (e EOL) Sequence() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseEOL accepts "LF" or "CRLF" in any case.
func ParseEOL(s string) (EOL, error) {
	switch {
	case strings.EqualFold(s, "LF"):
		return LF, nil
	case strings.EqualFold(s, "CRLF"):
		return CRLF, nil
	}
	return LF, fmt.Errorf("unknown line ending %q", s)
}
