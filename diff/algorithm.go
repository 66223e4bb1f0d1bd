// Package diff selects a LinesDiffComputer by name.
package diff

import (
	"fmt"
	"strings"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/diff/lcs"
	"github.com/arran4/golang-textedit/diff/myers"
)

// Algorithm names a LinesDiffComputer implementation.
type Algorithm int

const (
	// Default is the budgeted Myers computer with readability passes and move detection.
	Default Algorithm = iota
	// Legacy is the plain LCS computer.
	Legacy
)

var constructors = [...]func() textedit.LinesDiffComputer{
	Default: func() textedit.LinesDiffComputer { return myers.New() },
	Legacy:  func() textedit.LinesDiffComputer { return lcs.New() },
}

var names = [...]string{
	Default: "default",
	Legacy:  "legacy",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(constructors))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(constructors)
}

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// New returns a fresh computer for a. It panics on an unknown algorithm.
func (a Algorithm) New() textedit.LinesDiffComputer {
	if !a.valid() {
		panic(fmt.Sprintf("diff: unknown algorithm %d", int(a)))
	}
	return constructors[a]()
}

// ParseAlgorithm maps a name, case insensitively, to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("diff algorithm %q not found", name)
}

// Compute runs a over the inputs.
func Compute(a Algorithm, original, modified []string, opts textedit.Options) (textedit.LinesDiff, error) {
	if !a.valid() {
		return textedit.LinesDiff{}, fmt.Errorf("diff algorithm %d not found", int(a))
	}
	return a.New().ComputeDiff(original, modified, opts)
}
