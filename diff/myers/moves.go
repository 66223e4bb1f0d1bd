package myers

import (
	"strings"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/diff/hashline"
	"github.com/arran4/golang-textedit/internal/seq"
)

const (
	// minMoveLines is the shortest block reported as a move.
	minMoveLines = 3
	// minMoveContentLines is how many non-blank lines a move must carry.
	minMoveContentLines = 2
	// moveSimilarity is the share of lines of a move that must be identical. The other lines
	// may differ in leading or trailing whitespace only.
	moveSimilarity = 0.75
	// maxMoveCandidates caps the positions looked at per line content.
	maxMoveCandidates = 8
)

// detectMoves pairs deleted blocks with inserted blocks of other hunks that carry the same
// lines. Candidates come from a hash index of the inserted lines keyed on their trimmed
// content, so the search stays close to linear in the number of changed lines.
func detectMoves(hunks []seq.Hunk, original, modified []string, b *budget) []textedit.MovedText {
	trimmedX := trimAll(original)
	trimmedY := trimAll(modified)
	hashX := hashline.Hash(trimmedX)
	hashY := hashline.Hash(trimmedY)

	// owner[j] is the hunk holding inserted line j, -1 for unchanged lines.
	owner := make([]int, len(modified))
	for j := range owner {
		owner[j] = -1
	}
	var inserted []int
	for hi, h := range hunks {
		for j := h.Y0; j < h.Y1; j++ {
			owner[j] = hi
			inserted = append(inserted, j)
		}
	}
	if len(inserted) == 0 {
		return nil
	}
	index := hashline.NewIndex(hashY, inserted, maxMoveCandidates)
	used := make([]bool, len(modified))

	var moves []textedit.MovedText
	for hi, h := range hunks {
		for i := h.X0; i < h.X1; {
			bestJ, bestLen := -1, 0
			for _, j := range index.Lookup(hashX[i]) {
				if owner[j] == hi || used[j] || trimmedX[i] != trimmedY[j] {
					continue
				}
				n := 0
				for i+n < h.X1 && j+n < len(modified) && owner[j+n] == owner[j] && !used[j+n] && trimmedX[i+n] == trimmedY[j+n] {
					n++
				}
				if n > bestLen {
					bestJ, bestLen = j, n
				}
			}
			if bestLen == 0 || !acceptMove(original[i:i+bestLen], modified[bestJ:bestJ+bestLen]) {
				i++
				continue
			}
			for k := range bestLen {
				used[bestJ+k] = true
			}
			moves = append(moves, textedit.MovedText{
				Original: textedit.LineRange{Start: i + 1, EndExclusive: i + bestLen + 1},
				Modified: textedit.LineRange{Start: bestJ + 1, EndExclusive: bestJ + bestLen + 1},
				Changes:  moveChanges(original, modified, i, bestJ, bestLen, b),
			})
			i += bestLen
		}
	}
	return moves
}

func acceptMove(from, to []string) bool {
	if len(from) < minMoveLines {
		return false
	}
	identical, content := 0, 0
	for k := range from {
		if from[k] == to[k] {
			identical++
		}
		if strings.TrimSpace(from[k]) != "" {
			content++
		}
	}
	return content >= minMoveContentLines && float64(identical) >= moveSimilarity*float64(len(from))
}

// moveChanges lists the line pairs of a move that are not identical.
func moveChanges(original, modified []string, i, j, n int, b *budget) []textedit.LineRangeMapping {
	var out []textedit.LineRangeMapping
	for k := 0; k < n; k++ {
		if original[i+k] == modified[j+k] {
			continue
		}
		start := k
		for k < n && original[i+k] != modified[j+k] {
			k++
		}
		h := seq.Hunk{X0: i + start, X1: i + k, Y0: j + start, Y1: j + k}
		m := seq.LineMapping(h)
		m.InnerChanges, _ = innerChanges(m.Original.Slice(original), m.Modified.Slice(modified), m.Original.Start, m.Modified.Start, b)
		out = append(out, m)
	}
	return out
}

func trimAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}
