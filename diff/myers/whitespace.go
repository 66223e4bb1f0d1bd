package myers

import (
	"strings"

	"github.com/arran4/golang-textedit/internal/seq"
)

// dropWhitespaceChanges shrinks every hunk past leading and trailing line pairs that only
// differ in leading or trailing whitespace, and drops hunks that consist of nothing else.
func dropWhitespaceChanges(hunks []seq.Hunk, original, modified []string) []seq.Hunk {
	same := func(i, j int) bool {
		return strings.TrimSpace(original[i]) == strings.TrimSpace(modified[j])
	}
	out := hunks[:0]
	for _, h := range hunks {
		for h.X0 < h.X1 && h.Y0 < h.Y1 && same(h.X0, h.Y0) {
			h.X0++
			h.Y0++
		}
		for h.X0 < h.X1 && h.Y0 < h.Y1 && same(h.X1-1, h.Y1-1) {
			h.X1--
			h.Y1--
		}
		if !h.Empty() {
			out = append(out, h)
		}
	}
	return out
}
