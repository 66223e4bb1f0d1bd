// Package seq holds the sequence plumbing shared by the diff computers: interning lines into
// comparable ids, splitting hunk text into user-perceived characters and turning runs of
// matching elements into hunks and mappings.
package seq

import (
	textedit "github.com/arran4/golang-textedit"
)

// Intern maps every distinct key(line) of x and y to a small integer so that the algorithms
// compare ints instead of strings. A nil key compares lines verbatim.
func Intern(x, y []string, key func(string) string) ([]int, []int) {
	ids := make(map[string]int, len(x))
	intern := func(lines []string) []int {
		out := make([]int, len(lines))
		for i, l := range lines {
			if key != nil {
				l = key(l)
			}
			id, ok := ids[l]
			if !ok {
				id = len(ids)
				ids[l] = id
			}
			out[i] = id
		}
		return out
	}
	return intern(x), intern(y)
}

// Match is a run of Len equal elements starting at x[X] and y[Y].
type Match struct {
	X, Y, Len int
}

// Hunk is a maximal run of unmatched elements: x[X0:X1] was replaced by y[Y0:Y1].
type Hunk struct {
	X0, X1 int
	Y0, Y1 int
}

func (h Hunk) Empty() bool {
	return h.X0 == h.X1 && h.Y0 == h.Y1
}

// Hunks returns the gaps between the matches. Matches must be sorted and must not overlap.
func Hunks(matches []Match, n, m int) []Hunk {
	var hunks []Hunk
	x, y := 0, 0
	for _, mt := range matches {
		if mt.Len == 0 {
			continue
		}
		if h := (Hunk{x, mt.X, y, mt.Y}); !h.Empty() {
			hunks = append(hunks, h)
		}
		x, y = mt.X+mt.Len, mt.Y+mt.Len
	}
	if h := (Hunk{x, n, y, m}); !h.Empty() {
		hunks = append(hunks, h)
	}
	return hunks
}

// AppendMatch adds a run, merging it with the previous one when they touch.
func AppendMatch(matches []Match, mt Match) []Match {
	if mt.Len <= 0 {
		return matches
	}
	if k := len(matches) - 1; k >= 0 {
		last := &matches[k]
		if last.X+last.Len == mt.X && last.Y+last.Len == mt.Y {
			last.Len += mt.Len
			return matches
		}
	}
	return append(matches, mt)
}

// LineMapping converts a 0-based line hunk into a 1-based LineRangeMapping without inner changes.
func LineMapping(h Hunk) textedit.LineRangeMapping {
	return textedit.LineRangeMapping{
		Original: textedit.LineRange{Start: h.X0 + 1, EndExclusive: h.X1 + 1},
		Modified: textedit.LineRange{Start: h.Y0 + 1, EndExclusive: h.Y1 + 1},
	}
}

// CommonPrefix returns the number of leading elements x and y share.
func CommonPrefix(x, y []int) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i
		}
	}
	return n
}

// CommonSuffix returns the number of trailing elements x and y share.
func CommonSuffix(x, y []int) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[len(x)-1-i] != y[len(y)-1-i] {
			return i
		}
	}
	return n
}
