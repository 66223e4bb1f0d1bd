package myers

import (
	"github.com/arran4/golang-textedit/internal/seq"
)

// coalesceDistance is the number of unchanged lines that keeps two hunks apart. Hunks closer
// than this are merged into one.
const coalesceDistance = 2

// coalesce merges neighbouring hunks. The unchanged lines between them join both sides of the
// merged hunk, so the edit it describes is the same.
func coalesce(hunks []seq.Hunk) []seq.Hunk {
	if len(hunks) == 0 {
		return hunks
	}
	out := []seq.Hunk{hunks[0]}
	for _, h := range hunks[1:] {
		last := &out[len(out)-1]
		if h.X0-last.X1 < coalesceDistance {
			last.X1 = h.X1
			last.Y1 = h.Y1
			continue
		}
		out = append(out, h)
	}
	return out
}
