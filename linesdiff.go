package textedit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options tunes a LinesDiffComputer.
type Options struct {
	// IgnoreTrimWhitespace hides changes that only touch leading or trailing whitespace.
	IgnoreTrimWhitespace bool
	// MaxComputationTimeMs bounds the wall clock time spent aligning lines. 0 is unbounded.
	MaxComputationTimeMs int
	// MaxSteps bounds the number of alignment steps. 0 is unbounded. Unlike the time budget it
	// is deterministic.
	MaxSteps int
	// ComputeMoves reports blocks that were deleted in one place and inserted in another.
	ComputeMoves bool
}

// LinesDiffComputer computes the difference between two line sequences. Implementations are
// pure: the same input always yields the same LinesDiff.
type LinesDiffComputer interface {
	ComputeDiff(original, modified []string, opts Options) (LinesDiff, error)
}

// LinesDiff is the result of a LinesDiffComputer.
type LinesDiff struct {
	// Changes are sorted and never overlap.
	Changes []LineRangeMapping
	Moves   []MovedText
	// QuitEarly is set when the budget ran out and part of the alignment is approximate.
	QuitEarly bool
}

var ErrInvalidDiff = errors.New("invalid diff")

// ValidateLines rejects lines that embed a line separator.
func ValidateLines(original, modified []string) error {
	for _, in := range []struct {
		side  Side
		lines []string
	}{{SideOriginal, original}, {SideModified, modified}} {
		for i, l := range in.lines {
			if idx := strings.IndexAny(l, "\r\n"); idx >= 0 {
				return &InputError{
					Side:   in.side,
					Line:   i + 1,
					Reason: fmt.Sprintf("line separator at byte %d", idx),
				}
			}
		}
	}
	return nil
}

// String renders the changes in the style of a normal diff: "2,3c2", "4a5,6", "7d6", plus
// one "m" line per move.
func (d LinesDiff) String() string {
	var sb strings.Builder
	for _, c := range d.Changes {
		op := "c"
		switch {
		case c.Original.IsEmpty():
			op = "a"
		case c.Modified.IsEmpty():
			op = "d"
		}
		fmt.Fprintf(&sb, "%s%s%s\n", normalRange(c.Original), op, normalRange(c.Modified))
	}
	for _, m := range d.Moves {
		fmt.Fprintf(&sb, "m%s>%s\n", normalRange(m.Original), normalRange(m.Modified))
	}
	return sb.String()
}

var _ fmt.Stringer = LinesDiff{}

func normalRange(r LineRange) string {
	switch r.Length() {
	case 0:
		return fmt.Sprint(r.Start - 1)
	case 1:
		return fmt.Sprint(r.Start)
	}
	return fmt.Sprintf("%d,%d", r.Start, r.EndExclusive-1)
}

// Validate checks that the changes are sorted, stay within the inputs and that the unchanged
// gaps between them have the same length on both sides, so that the changes and gaps tile
// both inputs exactly.
func (d LinesDiff) Validate(originalCount, modifiedCount int) error {
	origNext, modNext := 1, 1
	for i, c := range d.Changes {
		if c.Original.Start < origNext || c.Modified.Start < modNext {
			return fmt.Errorf("%w: change %d (%s) overlaps the previous one", ErrInvalidDiff, i, c)
		}
		if c.Original.EndExclusive < c.Original.Start || c.Modified.EndExclusive < c.Modified.Start {
			return fmt.Errorf("%w: change %d (%s) is inverted", ErrInvalidDiff, i, c)
		}
		if c.Original.Start-origNext != c.Modified.Start-modNext {
			return fmt.Errorf("%w: unchanged gap before change %d differs in length", ErrInvalidDiff, i)
		}
		if c.Original.IsEmpty() && c.Modified.IsEmpty() {
			return fmt.Errorf("%w: change %d is empty", ErrInvalidDiff, i)
		}
		origNext, modNext = c.Original.EndExclusive, c.Modified.EndExclusive
	}
	if origNext > originalCount+1 || modNext > modifiedCount+1 {
		return fmt.Errorf("%w: changes run past the end of the input", ErrInvalidDiff)
	}
	if originalCount+1-origNext != modifiedCount+1-modNext {
		return fmt.Errorf("%w: trailing unchanged gap differs in length", ErrInvalidDiff)
	}
	return nil
}

// Apply rebuilds the modified lines from the original ones. Hunks with inner changes are
// rebuilt character by character, so Apply also checks the inner changes; the modified lines
// are only consulted for the replacement text.
func (d LinesDiff) Apply(original, modified []string) ([]string, error) {
	if err := d.Validate(len(original), len(modified)); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(modified))
	next := 1
	for _, c := range d.Changes {
		out = append(out, original[next-1:c.Original.Start-1]...)
		if len(c.InnerChanges) == 0 {
			out = append(out, c.Modified.Slice(modified)...)
		} else {
			lines, err := applyInnerChanges(c, original, modified)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		}
		next = c.Original.EndExclusive
	}
	out = append(out, original[next-1:]...)
	return out, nil
}

func applyInnerChanges(c LineRangeMapping, original, modified []string) ([]string, error) {
	orig := newRuneText(c.Original.Slice(original))
	mod := newRuneText(c.Modified.Slice(modified))
	rel := func(r Range, first int) Range {
		r.Start.Line -= first - 1
		r.End.Line -= first - 1
		return r
	}

	var changes []TextChange
	delta := 0
	for _, ic := range c.InnerChanges {
		oStart, oEnd, err := orig.offsets(rel(ic.Original, c.Original.Start))
		if err != nil {
			return nil, fmt.Errorf("%w: inner change %s: %w", ErrInvalidDiff, ic, err)
		}
		mStart, mEnd, err := mod.offsets(rel(ic.Modified, c.Modified.Start))
		if err != nil {
			return nil, fmt.Errorf("%w: inner change %s: %w", ErrInvalidDiff, ic, err)
		}
		tc := TextChange{
			OldOffset: oStart,
			OldText:   orig.slice(oStart, oEnd),
			NewOffset: oStart + delta,
			NewText:   mod.slice(mStart, mEnd),
		}
		delta += tc.NewLength() - tc.OldLength()
		changes = append(changes, tc)
	}
	text, err := ApplyTextChanges(string(orig.runes), changes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDiff, err)
	}
	return strings.Split(text, "\n"), nil
}

// TextChanges converts the diff into the ordered batch of TextChange values that turns
// strings.Join(original, "\n") into strings.Join(modified, "\n").
func (d LinesDiff) TextChanges(original, modified []string) ([]TextChange, error) {
	if err := d.Validate(len(original), len(modified)); err != nil {
		return nil, err
	}
	orig := newRuneText(original)
	mod := newRuneText(modified)

	var changes []TextChange
	delta := 0
	add := func(oldOffset int, oldText, newText string) {
		tc := TextChange{OldOffset: oldOffset, OldText: oldText, NewOffset: oldOffset + delta, NewText: newText}
		delta += tc.NewLength() - tc.OldLength()
		// Hunks around an empty unchanged line can meet at one offset; a batch needs them as
		// a single change.
		if k := len(changes) - 1; k >= 0 && changes[k].OldEnd() == oldOffset {
			changes[k].OldText += oldText
			changes[k].NewText += newText
			return
		}
		changes = append(changes, tc)
	}
	for _, c := range d.Changes {
		if len(c.InnerChanges) > 0 {
			for _, ic := range c.InnerChanges {
				oStart, oEnd, err := orig.offsets(ic.Original)
				if err != nil {
					return nil, fmt.Errorf("%w: inner change %s: %w", ErrInvalidDiff, ic, err)
				}
				mStart, mEnd, err := mod.offsets(ic.Modified)
				if err != nil {
					return nil, fmt.Errorf("%w: inner change %s: %w", ErrInvalidDiff, ic, err)
				}
				add(oStart, orig.slice(oStart, oEnd), mod.slice(mStart, mEnd))
			}
			continue
		}
		oldLines := c.Original.Slice(original)
		newLines := c.Modified.Slice(modified)
		switch {
		case len(oldLines) > 0 && len(newLines) > 0:
			add(orig.starts[c.Original.Start-1], strings.Join(oldLines, "\n"), strings.Join(newLines, "\n"))
		case len(newLines) > 0:
			// Insertion before line Start, or after the last line.
			switch {
			case c.Original.Start <= len(original):
				add(orig.starts[c.Original.Start-1], "", strings.Join(newLines, "\n")+"\n")
			case len(original) > 0:
				add(len(orig.runes), "", "\n"+strings.Join(newLines, "\n"))
			default:
				add(0, "", strings.Join(newLines, "\n"))
			}
		case len(oldLines) > 0:
			switch {
			case c.Original.EndExclusive <= len(original):
				add(orig.starts[c.Original.Start-1], strings.Join(oldLines, "\n")+"\n", "")
			case c.Original.Start > 1:
				add(orig.starts[c.Original.Start-1]-1, "\n"+strings.Join(oldLines, "\n"), "")
			default:
				add(0, strings.Join(oldLines, "\n"), "")
			}
		}
	}
	return changes, nil
}

// runeText is a line sequence joined with "\n" and indexed by code point.
type runeText struct {
	runes  []rune
	starts []int // offset of the first code point of every line
}

func newRuneText(lines []string) runeText {
	t := runeText{
		runes:  []rune(strings.Join(lines, "\n")),
		starts: make([]int, len(lines)),
	}
	n := 0
	for i, l := range lines {
		t.starts[i] = n
		n += utf8.RuneCountInString(l) + 1
	}
	return t
}

func (t runeText) offset(p Position) (int, error) {
	if p.Line < 1 || p.Line > len(t.starts) || p.Column < 1 {
		return 0, fmt.Errorf("%w: position %s", ErrOffsetOutOfRange, p)
	}
	lineEnd := len(t.runes)
	if p.Line < len(t.starts) {
		lineEnd = t.starts[p.Line] - 1
	}
	o := t.starts[p.Line-1] + p.Column - 1
	if o > lineEnd {
		return 0, fmt.Errorf("%w: position %s", ErrOffsetOutOfRange, p)
	}
	return o, nil
}

func (t runeText) offsets(r Range) (int, int, error) {
	s, err := t.offset(r.Start)
	if err != nil {
		return 0, 0, err
	}
	e, err := t.offset(r.End)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}

func (t runeText) slice(start, end int) string {
	return string(t.runes[start:end])
}
