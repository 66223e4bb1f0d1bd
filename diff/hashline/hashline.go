// Package hashline matches lines by content hash. It provides the parallel line hasher and
// hash index used for move detection, and a greedy run alignment that the default computer
// falls back to when its budget is exhausted.
package hashline

import (
	"hash/fnv"
	"runtime"
	"slices"
	"sync"

	"github.com/arran4/golang-textedit/internal/seq"
)

// MaxOccurrences is how often a value may occur in x before Align stops using it as an anchor.
// Very common lines (blank lines, lone braces) produce quadratic numbers of candidate runs
// while saying little about the alignment.
const MaxOccurrences = 64

// MaxRuns bounds the number of candidate runs Align considers, longest first.
const MaxRuns = 4096

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, err := h.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return h.Sum64()
}

// Hash returns the FNV-1a hash of every line. Large inputs are hashed in parallel chunks.
func Hash(lines []string) []uint64 {
	n := len(lines)
	hashes := make([]uint64, n)
	numCPU := runtime.NumCPU()
	if n < 1000 || numCPU == 1 {
		for i, line := range lines {
			hashes[i] = hashString(line)
		}
		return hashes
	}

	var wg sync.WaitGroup
	chunkSize := (n + numCPU - 1) / numCPU
	for i := 0; i < numCPU; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for k := s; k < e; k++ {
				hashes[k] = hashString(lines[k])
			}
		}(start, end)
	}
	wg.Wait()
	return hashes
}

// Index finds the positions of a hash among a chosen subset of lines.
type Index struct {
	positions map[uint64][]int
	limit     int
}

// NewIndex indexes hashes[i] for every i in positions. At most limit positions are kept per
// hash, the earliest ones; limit <= 0 keeps all.
func NewIndex(hashes []uint64, positions []int, limit int) *Index {
	ix := &Index{positions: make(map[uint64][]int, len(positions)), limit: limit}
	for _, i := range positions {
		h := hashes[i]
		if limit > 0 && len(ix.positions[h]) >= limit {
			continue
		}
		ix.positions[h] = append(ix.positions[h], i)
	}
	return ix
}

// Lookup returns the indexed positions of h in ascending order.
func (ix *Index) Lookup(h uint64) []int {
	return ix.positions[h]
}

type run struct {
	FromStart int
	ToStart   int
	Length    int
}

// Align greedily matches the longest runs of equal elements of x and y, skipping any run that
// crosses one already chosen. The result is a valid, not necessarily optimal, alignment that is
// cheap to compute for inputs of any size.
func Align[T comparable](x, y []T) []seq.Match {
	m := make(map[T][]int, len(x))
	for i, v := range x {
		m[v] = append(m[v], i)
	}

	var runs []run

	// currentRuns: from index -> length of the run ending there at the previous y element.
	// Two maps are swapped to avoid allocating per iteration.
	currentRuns := make(map[int]int)
	nextRuns := make(map[int]int)

	for j, v := range y {
		clear(nextRuns)

		if indices := m[v]; len(indices) <= MaxOccurrences {
			for _, i := range indices {
				length := 1
				if prevLen, ok := currentRuns[i-1]; ok {
					length = prevLen + 1
				}
				nextRuns[i] = length
			}
		}

		// Any run in currentRuns that is not extended in nextRuns has terminated.
		for i, length := range currentRuns {
			if _, extended := nextRuns[i+1]; !extended {
				runs = append(runs, run{FromStart: i - length + 1, ToStart: j - length, Length: length})
			}
		}

		currentRuns, nextRuns = nextRuns, currentRuns
	}

	for i, length := range currentRuns {
		runs = append(runs, run{FromStart: i - length + 1, ToStart: len(y) - length, Length: length})
	}

	// Longest first, then closest to the origin. The start pair is unique so the order is total.
	slices.SortFunc(runs, func(a, b run) int {
		if a.Length != b.Length {
			return b.Length - a.Length
		}
		if da, db := a.FromStart+a.ToStart, b.FromStart+b.ToStart; da != db {
			return da - db
		}
		return a.FromStart - b.FromStart
	})
	if len(runs) > MaxRuns {
		runs = runs[:MaxRuns]
	}

	var selected []run
	for _, r := range runs {
		conflict := false
		for _, s := range selected {
			isBefore := r.FromStart+r.Length <= s.FromStart && r.ToStart+r.Length <= s.ToStart
			isAfter := r.FromStart >= s.FromStart+s.Length && r.ToStart >= s.ToStart+s.Length
			if !isBefore && !isAfter {
				conflict = true
				break
			}
		}
		if !conflict {
			selected = append(selected, r)
		}
	}

	slices.SortFunc(selected, func(a, b run) int {
		return a.FromStart - b.FromStart
	})

	matches := make([]seq.Match, 0, len(selected))
	for _, r := range selected {
		matches = seq.AppendMatch(matches, seq.Match{X: r.FromStart, Y: r.ToStart, Len: r.Length})
	}
	return matches
}
