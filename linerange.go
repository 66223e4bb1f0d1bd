package textedit

import (
	"fmt"
	"strings"
)

// LineRange is the half-open range of 1-based lines [Start, EndExclusive).
// An empty LineRange marks an insertion point before line Start.
type LineRange struct {
	Start        int
	EndExclusive int
}

// NewLineRange panics if end < start or start < 1; both are programming errors.
func NewLineRange(start, endExclusive int) LineRange {
	if start < 1 || endExclusive < start {
		panic(fmt.Sprintf("invalid line range [%d,%d)", start, endExclusive))
	}
	return LineRange{Start: start, EndExclusive: endExclusive}
}

func (r LineRange) Length() int {
	return r.EndExclusive - r.Start
}

func (r LineRange) IsEmpty() bool {
	return r.Start == r.EndExclusive
}

func (r LineRange) Contains(line int) bool {
	return r.Start <= line && line < r.EndExclusive
}

// Intersects reports whether the two ranges share at least one line. An empty range shares
// none.
func (r LineRange) Intersects(o LineRange) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Start < o.EndExclusive && o.Start < r.EndExclusive
}

// Join returns the smallest range covering both.
func (r LineRange) Join(o LineRange) LineRange {
	return LineRange{Start: min(r.Start, o.Start), EndExclusive: max(r.EndExclusive, o.EndExclusive)}
}

// Delta shifts the range by n lines.
func (r LineRange) Delta(n int) LineRange {
	return LineRange{Start: r.Start + n, EndExclusive: r.EndExclusive + n}
}

// Slice returns the lines of the 1-based range from a 0-based slice.
func (r LineRange) Slice(lines []string) []string {
	return lines[r.Start-1 : r.EndExclusive-1]
}

func (r LineRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.EndExclusive)
}

// RangeMapping maps a character range of the original to one of the modified text.
type RangeMapping struct {
	Original Range
	Modified Range
}

func (m RangeMapping) String() string {
	return fmt.Sprintf("{%s -> %s}", m.Original, m.Modified)
}

// LineRangeMapping is one hunk: a run of original lines replaced by a run of modified lines.
// InnerChanges is nil when the hunk has no character alignment, i.e. one side is empty.
type LineRangeMapping struct {
	Original     LineRange
	Modified     LineRange
	InnerChanges []RangeMapping
}

func (m LineRangeMapping) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s", m.Original, m.Modified)
	for _, c := range m.InnerChanges {
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}
	return sb.String()
}

// MovedText pairs a block deleted from the original with the block it became in the modified
// text. Changes lists the line differences inside a block that moved with small edits.
type MovedText struct {
	Original LineRange
	Modified LineRange
	Changes  []LineRangeMapping
}

func (m MovedText) String() string {
	return fmt.Sprintf("move %s -> %s", m.Original, m.Modified)
}
