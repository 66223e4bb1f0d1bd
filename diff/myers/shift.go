package myers

import (
	"unicode"

	"github.com/arran4/golang-textedit/internal/seq"
)

// Never move a hunk more than this many lines.
const maxSliding = 100

// We don't care if a line is indented more than this and clamp the value to maxIndent.
const maxIndent = 200

// blankBonus rewards a boundary next to a blank line.
const blankBonus = 50

// shiftHunks moves pure insertions and deletions whose position is ambiguous, e.g. a deleted
// function whose closing brace equals the brace above it, to the position whose boundaries
// look most natural: next to blank lines and at low indentation. The number of changed lines
// never changes.
func shiftHunks(hunks []seq.Hunk, x, y []int, original, modified []string) []seq.Hunk {
	for i := range hunks {
		h := &hunks[i]
		prevX, prevY := 0, 0
		if i > 0 {
			prevX, prevY = hunks[i-1].X1, hunks[i-1].Y1
		}
		nextX, nextY := len(x), len(y)
		if i+1 < len(hunks) {
			nextX, nextY = hunks[i+1].X0, hunks[i+1].Y0
		}

		switch {
		case h.X0 == h.X1 && h.Y0 < h.Y1:
			s, e := slide(y, modified, h.Y0, h.Y1, prevY, nextY)
			h.X0 += s - h.Y0
			h.X1 = h.X0
			h.Y0, h.Y1 = s, e
		case h.Y0 == h.Y1 && h.X0 < h.X1:
			s, e := slide(x, original, h.X0, h.X1, prevX, nextX)
			h.Y0 += s - h.X0
			h.Y1 = h.Y0
			h.X0, h.X1 = s, e
		}
	}
	return hunks
}

// slide returns the best position for the changed block ids[start:end], which may move within
// the unchanged lines [lo, hi).
func slide(ids []int, lines []string, start, end, lo, hi int) (int, int) {
	size := end - start
	top := start
	for top > lo && start-top < maxSliding && ids[top-1] == ids[top-1+size] {
		top--
	}
	bottom := start
	for bottom+size < hi && bottom-start < maxSliding && ids[bottom] == ids[bottom+size] {
		bottom++
	}
	if top == bottom {
		return start, end
	}

	// Ties go to the earliest position.
	best, bestScore := top, -1<<31
	for s := top; s <= bottom; s++ {
		score := boundaryScore(lines, s) + boundaryScore(lines, s+size)
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, best + size
}

// boundaryScore rates a cut between lines[i-1] and lines[i]. Low indentation around the cut and
// adjacent blank lines score higher; the ends of the file count as unindented.
func boundaryScore(lines []string, i int) int {
	score := 1000
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= len(lines) {
			continue
		}
		indent := getIndent(lines[j])
		if indent == -1 {
			score += blankBonus
			continue
		}
		score -= indent
	}
	return score
}

// getIndent returns the indentation width of s with tabs expanded to 8 columns, or -1 when s is
// blank.
func getIndent(s string) int {
	indent := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return indent
		}
		switch r {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		default:
			// ignore all other spaces
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1 // only whitespace
}
