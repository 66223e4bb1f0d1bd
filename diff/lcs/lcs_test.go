package lcs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/internal/seq"
)

func pos(line, col int) textedit.Position {
	return textedit.Position{Line: line, Column: col}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want []seq.Match
	}{
		{name: "empty"},
		{name: "equal", x: []int{1, 2, 3}, y: []int{1, 2, 3}, want: []seq.Match{{X: 0, Y: 0, Len: 3}}},
		{name: "disjoint", x: []int{1, 2}, y: []int{3, 4}},
		{
			name: "middle",
			x:    []int{1, 2, 3, 4},
			y:    []int{1, 5, 3, 4},
			want: []seq.Match{{X: 0, Y: 0, Len: 1}, {X: 2, Y: 2, Len: 2}},
		},
		{
			// Both 1s of y could match; the first one is taken.
			name: "front greedy",
			x:    []int{1},
			y:    []int{1, 1},
			want: []seq.Match{{X: 0, Y: 0, Len: 1}},
		},
		{
			name: "reorder",
			x:    []int{1, 2, 3},
			y:    []int{3, 1, 2},
			want: []seq.Match{{X: 0, Y: 1, Len: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Matches(tt.x, tt.y)); diff != "" {
				t.Errorf("Matches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeDiff(t *testing.T) {
	tests := []struct {
		name               string
		original, modified []string
		want               []textedit.LineRangeMapping
	}{
		{
			name:     "identical",
			original: []string{"a", "b"},
			modified: []string{"a", "b"},
		},
		{
			name:     "inner change",
			original: []string{"x", "abc", "y"},
			modified: []string{"x", "axc", "y"},
			want: []textedit.LineRangeMapping{{
				Original: textedit.LineRange{Start: 2, EndExclusive: 3},
				Modified: textedit.LineRange{Start: 2, EndExclusive: 3},
				InnerChanges: []textedit.RangeMapping{{
					Original: textedit.Range{Start: pos(2, 2), End: pos(2, 3)},
					Modified: textedit.Range{Start: pos(2, 2), End: pos(2, 3)},
				}},
			}},
		},
		{
			name:     "insertion has no inner changes",
			original: []string{"a"},
			modified: []string{"a", "b"},
			want: []textedit.LineRangeMapping{{
				Original: textedit.LineRange{Start: 2, EndExclusive: 2},
				Modified: textedit.LineRange{Start: 2, EndExclusive: 3},
			}},
		},
		{
			name:     "line join",
			original: []string{"ab", "cd"},
			modified: []string{"abcd"},
			want: []textedit.LineRangeMapping{{
				Original: textedit.LineRange{Start: 1, EndExclusive: 3},
				Modified: textedit.LineRange{Start: 1, EndExclusive: 2},
				InnerChanges: []textedit.RangeMapping{{
					Original: textedit.Range{Start: pos(1, 3), End: pos(2, 1)},
					Modified: textedit.Range{Start: pos(1, 3), End: pos(1, 3)},
				}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New().ComputeDiff(tt.original, tt.modified, textedit.Options{IgnoreTrimWhitespace: true, ComputeMoves: true})
			if err != nil {
				t.Fatalf("ComputeDiff: %v", err)
			}
			if diff := cmp.Diff(tt.want, d.Changes); diff != "" {
				t.Errorf("Changes mismatch (-want +got):\n%s", diff)
			}
			if d.QuitEarly || len(d.Moves) != 0 {
				t.Errorf("QuitEarly = %v, Moves = %v; want false, none", d.QuitEarly, d.Moves)
			}
			got, err := d.Apply(tt.original, tt.modified)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(tt.modified, got); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeDiffLargeHunk(t *testing.T) {
	original := []string{strings.Repeat("a", 3000)}
	modified := []string{strings.Repeat("b", 3000)}
	d, err := New().ComputeDiff(original, modified, textedit.Options{})
	if err != nil {
		t.Fatalf("ComputeDiff: %v", err)
	}
	want := []textedit.RangeMapping{{
		Original: textedit.Range{Start: pos(1, 1), End: pos(1, 3001)},
		Modified: textedit.Range{Start: pos(1, 1), End: pos(1, 3001)},
	}}
	if len(d.Changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(d.Changes))
	}
	if diff := cmp.Diff(want, d.Changes[0].InnerChanges); diff != "" {
		t.Errorf("InnerChanges mismatch (-want +got):\n%s", diff)
	}
}
