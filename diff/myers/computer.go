// Package myers implements the default line diff: a budgeted Myers alignment followed by
// passes that make the result easier to read.
package myers

import (
	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/internal/seq"
)

// Computer is the default LinesDiffComputer.
type Computer struct{}

var _ textedit.LinesDiffComputer = Computer{}

func New() Computer {
	return Computer{}
}

// ComputeDiff aligns the lines, then runs in order: whitespace reclassification, boundary
// shifting, hunk coalescing, move detection and the character level diff of every hunk.
func (Computer) ComputeDiff(original, modified []string, opts textedit.Options) (textedit.LinesDiff, error) {
	if err := textedit.ValidateLines(original, modified); err != nil {
		return textedit.LinesDiff{}, err
	}
	b := newBudget(opts.MaxSteps, opts.MaxComputationTimeMs)

	x, y := seq.Intern(original, modified, nil)
	matches, quitEarly := align(x, y, b)
	hunks := seq.Hunks(matches, len(x), len(y))

	if opts.IgnoreTrimWhitespace {
		hunks = dropWhitespaceChanges(hunks, original, modified)
	}
	hunks = shiftHunks(hunks, x, y, original, modified)
	hunks = coalesce(hunks)

	var result textedit.LinesDiff
	if opts.ComputeMoves {
		result.Moves = detectMoves(hunks, original, modified, b)
	}
	result.Changes = make([]textedit.LineRangeMapping, 0, len(hunks))
	for _, h := range hunks {
		m := seq.LineMapping(h)
		if h.X0 < h.X1 && h.Y0 < h.Y1 {
			var fellBack bool
			m.InnerChanges, fellBack = innerChanges(m.Original.Slice(original), m.Modified.Slice(modified), m.Original.Start, m.Modified.Start, b)
			quitEarly = quitEarly || fellBack
		}
		result.Changes = append(result.Changes, m)
	}
	result.QuitEarly = quitEarly || b.exhausted
	return result, nil
}

// innerChanges runs the same alignment over the grapheme clusters of a hunk. Once the budget is
// gone the hunk gets a single change spanning both sides.
func innerChanges(from, to []string, fromLine, toLine int, b *budget) ([]textedit.RangeMapping, bool) {
	xc := seq.NewChars(from, fromLine)
	yc := seq.NewChars(to, toLine)
	if b.exhausted {
		return []textedit.RangeMapping{{
			Original: xc.Range(0, len(xc.Tokens)),
			Modified: yc.Range(0, len(yc.Tokens)),
		}}, true
	}
	x, y := seq.Intern(xc.Tokens, yc.Tokens, nil)
	matches, fellBack := align(x, y, b)
	return seq.InnerChanges(xc, yc, seq.Hunks(matches, len(x), len(y))), fellBack
}
