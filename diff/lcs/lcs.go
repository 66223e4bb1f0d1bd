// Package lcs implements the legacy line diff: a plain longest common subsequence alignment
// with no heuristics. It is slow, O(N*M) in time and space, but simple enough to serve as the
// reference the default computer is checked against.
package lcs

import (
	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/internal/seq"
)

// MaxCharCells caps the character table of one hunk. Larger hunks get a single inner change
// spanning both sides.
const MaxCharCells = 1 << 22

// Computer is the legacy LinesDiffComputer. Options are ignored: no whitespace trimming, no
// moves, no budget.
type Computer struct{}

var _ textedit.LinesDiffComputer = Computer{}

func New() Computer {
	return Computer{}
}

func (Computer) ComputeDiff(original, modified []string, _ textedit.Options) (textedit.LinesDiff, error) {
	if err := textedit.ValidateLines(original, modified); err != nil {
		return textedit.LinesDiff{}, err
	}
	x, y := seq.Intern(original, modified, nil)
	hunks := seq.Hunks(Matches(x, y), len(x), len(y))

	var result textedit.LinesDiff
	for _, h := range hunks {
		m := seq.LineMapping(h)
		if h.X0 < h.X1 && h.Y0 < h.Y1 {
			m.InnerChanges = innerChanges(m.Original.Slice(original), m.Modified.Slice(modified), m.Original.Start, m.Modified.Start)
		}
		result.Changes = append(result.Changes, m)
	}
	return result, nil
}

func innerChanges(from, to []string, fromLine, toLine int) []textedit.RangeMapping {
	xc := seq.NewChars(from, fromLine)
	yc := seq.NewChars(to, toLine)
	if (len(xc.Tokens)+1)*(len(yc.Tokens)+1) > MaxCharCells {
		return []textedit.RangeMapping{{
			Original: xc.Range(0, len(xc.Tokens)),
			Modified: yc.Range(0, len(yc.Tokens)),
		}}
	}
	x, y := seq.Intern(xc.Tokens, yc.Tokens, nil)
	return seq.InnerChanges(xc, yc, seq.Hunks(Matches(x, y), len(x), len(y)))
}

// Matches aligns x and y along a longest common subsequence. Equal elements are matched
// greedily from the front.
func Matches(x, y []int) []seq.Match {
	var matches []seq.Match
	prefix := seq.CommonPrefix(x, y)
	matches = seq.AppendMatch(matches, seq.Match{X: 0, Y: 0, Len: prefix})
	suffix := seq.CommonSuffix(x[prefix:], y[prefix:])
	xs, ys := x[prefix:len(x)-suffix], y[prefix:len(y)-suffix]

	m, n := len(xs), len(ys)
	if m > 0 && n > 0 {
		// table[i*(n+1)+j] is the LCS length of xs[i:] and ys[j:].
		width := n + 1
		table := make([]int32, (m+1)*width)
		for i := m - 1; i >= 0; i-- {
			for j := n - 1; j >= 0; j-- {
				switch {
				case xs[i] == ys[j]:
					table[i*width+j] = table[(i+1)*width+j+1] + 1
				case table[(i+1)*width+j] >= table[i*width+j+1]:
					table[i*width+j] = table[(i+1)*width+j]
				default:
					table[i*width+j] = table[i*width+j+1]
				}
			}
		}

		i, j := 0, 0
		for i < m && j < n {
			switch {
			case xs[i] == ys[j]:
				matches = seq.AppendMatch(matches, seq.Match{X: prefix + i, Y: prefix + j, Len: 1})
				i++
				j++
			case table[(i+1)*width+j] >= table[i*width+j+1]:
				// Prefer Delete (move i)
				i++
			default:
				// Prefer Add (move j)
				j++
			}
		}
	}

	return seq.AppendMatch(matches, seq.Match{X: len(x) - suffix, Y: len(y) - suffix, Len: suffix})
}
