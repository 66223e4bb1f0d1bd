package myers

// Implementation note: this is the linear space variant of Myers' O(ND) algorithm. Each call to
// bisect searches forward from the top left and backward from the bottom right of the edit
// graph until the two paths overlap; the overlap point lies on a shortest edit path, so the
// problem splits into two independent halves there. See
//
// E. Myers, "An O(ND) Difference Algorithm and Its Variations", Algorithmica 1 (1986).

import (
	"time"

	"github.com/arran4/golang-textedit/diff/hashline"
	"github.com/arran4/golang-textedit/internal/logger"
	"github.com/arran4/golang-textedit/internal/seq"
)

// clockInterval is how many steps pass between wall clock checks.
const clockInterval = 1024

// budget is the cooperative cancellation of one ComputeDiff call. A step is one diagonal
// probed by bisect.
type budget struct {
	maxSteps  int
	deadline  time.Time
	steps     int
	exhausted bool
}

func newBudget(maxSteps, maxMillis int) *budget {
	b := &budget{maxSteps: maxSteps}
	if maxMillis > 0 {
		b.deadline = time.Now().Add(time.Duration(maxMillis) * time.Millisecond)
	}
	return b
}

// step accounts for one unit of work and reports whether work may continue.
func (b *budget) step() bool {
	if b.exhausted {
		return false
	}
	b.steps++
	if b.maxSteps > 0 && b.steps > b.maxSteps {
		b.exhausted = true
		return false
	}
	if !b.deadline.IsZero() && b.steps%clockInterval == 0 && time.Now().After(b.deadline) {
		b.exhausted = true
		return false
	}
	return true
}

// differ aligns two interned sequences. v1 and v2 are scratch diagonals shared by every bisect
// of the call; bisect is done with them before the halves are compared.
type differ struct {
	x, y    []int
	budget  *budget
	matches []seq.Match
	v1, v2  []int
	// fellBack is set when a region was aligned by the greedy fallback.
	fellBack bool
}

// align returns the matching runs of a shortest edit script between x and y, or an
// approximation of it for the regions where the budget ran out.
func align(x, y []int, b *budget) ([]seq.Match, bool) {
	d := &differ{x: x, y: y, budget: b}
	// bisect uses 2*maxD+2 entries with maxD rounded up from half of n+m.
	size := 2*((len(x)+len(y)+1)/2) + 2
	d.v1 = make([]int, size)
	d.v2 = make([]int, size)
	d.compare(0, len(x), 0, len(y))
	return d.matches, d.fellBack
}

func (d *differ) match(x, y, n int) {
	d.matches = seq.AppendMatch(d.matches, seq.Match{X: x, Y: y, Len: n})
}

func (d *differ) compare(x0, x1, y0, y1 int) {
	prefix := seq.CommonPrefix(d.x[x0:x1], d.y[y0:y1])
	d.match(x0, y0, prefix)
	x0 += prefix
	y0 += prefix

	suffix := seq.CommonSuffix(d.x[x0:x1], d.y[y0:y1])
	x1 -= suffix
	y1 -= suffix

	if x0 < x1 && y0 < y1 {
		if sx, sy, ok := d.bisect(x0, x1, y0, y1); !ok {
			d.fallback(x0, x1, y0, y1)
		} else if (sx == x0 && sy == y0) || (sx == x1 && sy == y1) {
			// No common element was found between the two corners.
		} else {
			d.compare(x0, sx, y0, sy)
			d.compare(sx, x1, sy, y1)
		}
	}

	d.match(x1, y1, suffix)
}

func (d *differ) fallback(x0, x1, y0, y1 int) {
	if !d.fellBack {
		logger.Debugf("myers: budget exhausted after %d steps, aligning %dx%d region greedily", d.budget.steps, x1-x0, y1-y0)
	}
	d.fellBack = true
	for _, m := range hashline.Align(d.x[x0:x1], d.y[y0:y1]) {
		d.match(x0+m.X, y0+m.Y, m.Len)
	}
}

// bisect finds the point where a forward and a backward shortest path through the region
// overlap. It returns false when the budget runs out. When the region has nothing in common
// it returns one of its corners.
func (d *differ) bisect(x0, x1, y0, y1 int) (int, int, bool) {
	a, b := d.x[x0:x1], d.y[y0:y1]
	n, m := len(a), len(b)
	maxD := (n + m + 1) / 2
	vOffset := maxD
	vLength := 2 * maxD
	v1 := d.v1[:vLength+2]
	v2 := d.v2[:vLength+2]
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := n - m
	// With an odd delta the paths can first meet during a forward pass, otherwise during a
	// backward pass.
	front := delta%2 != 0
	// Offsets for the start and end of the k loops, trimming diagonals that ran off the grid.
	k1start, k1end, k2start, k2end := 0, 0, 0, 0

	for dd := 0; dd < maxD; dd++ {
		for k1 := -dd + k1start; k1 <= dd-k1end; k1 += 2 {
			if !d.budget.step() {
				return 0, 0, false
			}
			k1Offset := vOffset + k1
			var px int
			if k1 == -dd || (k1 != dd && v1[k1Offset-1] < v1[k1Offset+1]) {
				px = v1[k1Offset+1]
			} else {
				px = v1[k1Offset-1] + 1
			}
			py := px - k1
			for px < n && py < m && a[px] == b[py] {
				px++
				py++
			}
			v1[k1Offset] = px
			switch {
			case px > n:
				k1end += 2
			case py > m:
				k1start += 2
			case front:
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					if px >= n-v2[k2Offset] {
						return x0 + px, y0 + py, true
					}
				}
			}
		}

		for k2 := -dd + k2start; k2 <= dd-k2end; k2 += 2 {
			if !d.budget.step() {
				return 0, 0, false
			}
			k2Offset := vOffset + k2
			var qx int
			if k2 == -dd || (k2 != dd && v2[k2Offset-1] < v2[k2Offset+1]) {
				qx = v2[k2Offset+1]
			} else {
				qx = v2[k2Offset-1] + 1
			}
			qy := qx - k2
			for qx < n && qy < m && a[n-qx-1] == b[m-qy-1] {
				qx++
				qy++
			}
			v2[k2Offset] = qx
			switch {
			case qx > n:
				k2end += 2
			case qy > m:
				k2start += 2
			case !front:
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					px := v1[k1Offset]
					py := vOffset + px - k1Offset
					if px >= n-qx {
						return x0 + px, y0 + py, true
					}
				}
			}
		}
	}
	return x0, y0, true
}
