package textedit

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func lr(start, end int) LineRange {
	return LineRange{Start: start, EndExclusive: end}
}

func TestValidateLines(t *testing.T) {
	err := ValidateLines([]string{"a"}, []string{"b", "c\r"})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("ValidateLines error = %v, want *InputError", err)
	}
	if inputErr.Side != SideModified || inputErr.Line != 2 {
		t.Errorf("InputError = %+v", inputErr)
	}
	if !errors.Is(err, ErrInvalidLine) {
		t.Errorf("error does not wrap ErrInvalidLine")
	}
	if err := ValidateLines([]string{"a", ""}, nil); err != nil {
		t.Errorf("ValidateLines: %v", err)
	}
}

func TestLinesDiffValidate(t *testing.T) {
	tests := []struct {
		name    string
		changes []LineRangeMapping
		wantErr bool
	}{
		// 3 vs 4 lines with no changes leaves trailing gaps of different length.
		{name: "no changes", wantErr: true},
		{name: "replace", changes: []LineRangeMapping{{Original: lr(2, 3), Modified: lr(2, 4)}}},
		{name: "append", changes: []LineRangeMapping{{Original: lr(4, 4), Modified: lr(4, 5)}}},
		{
			name: "overlap",
			changes: []LineRangeMapping{
				{Original: lr(1, 3), Modified: lr(1, 3)},
				{Original: lr(2, 3), Modified: lr(3, 3)},
			},
			wantErr: true,
		},
		{name: "gap mismatch", changes: []LineRangeMapping{{Original: lr(2, 3), Modified: lr(1, 2)}}, wantErr: true},
		{name: "empty change", changes: []LineRangeMapping{{Original: lr(2, 2), Modified: lr(2, 2)}}, wantErr: true},
		{name: "past end", changes: []LineRangeMapping{{Original: lr(3, 5), Modified: lr(3, 6)}}, wantErr: true},
		{name: "inverted", changes: []LineRangeMapping{{Original: lr(3, 2), Modified: lr(3, 3)}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LinesDiff{Changes: tt.changes}.Validate(3, 4)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDiff) {
				t.Errorf("error does not wrap ErrInvalidDiff: %v", err)
			}
		})
	}
}

func TestLinesDiffString(t *testing.T) {
	d := LinesDiff{
		Changes: []LineRangeMapping{
			{Original: lr(2, 4), Modified: lr(2, 2)},
			{Original: lr(5, 5), Modified: lr(3, 5)},
			{Original: lr(7, 8), Modified: lr(7, 8)},
		},
		Moves: []MovedText{{Original: lr(2, 4), Modified: lr(3, 5)}},
	}
	want := "2,3d1\n4a3,4\n7c7\nm2,3>3,4\n"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTextChanges(t *testing.T) {
	tests := []struct {
		name     string
		original []string
		modified []string
		changes  []LineRangeMapping
		want     []TextChange
	}{
		{
			name:     "insert middle",
			original: []string{"a", "c"},
			modified: []string{"a", "b", "c"},
			changes:  []LineRangeMapping{{Original: lr(2, 2), Modified: lr(2, 3)}},
			want:     []TextChange{{OldOffset: 2, NewOffset: 2, NewText: "b\n"}},
		},
		{
			name:     "append",
			original: []string{"a", "b"},
			modified: []string{"a", "b", "c"},
			changes:  []LineRangeMapping{{Original: lr(3, 3), Modified: lr(3, 4)}},
			want:     []TextChange{{OldOffset: 3, NewOffset: 3, NewText: "\nc"}},
		},
		{
			name:     "delete tail",
			original: []string{"a", "b", "c"},
			modified: []string{"a"},
			changes:  []LineRangeMapping{{Original: lr(2, 4), Modified: lr(2, 2)}},
			want:     []TextChange{{OldOffset: 1, OldText: "\nb\nc", NewOffset: 1}},
		},
		{
			name:     "delete all",
			original: []string{"a"},
			modified: nil,
			changes:  []LineRangeMapping{{Original: lr(1, 2), Modified: lr(1, 1)}},
			want:     []TextChange{{OldOffset: 0, OldText: "a", NewOffset: 0}},
		},
		{
			name:     "from empty",
			original: nil,
			modified: []string{"x", "y"},
			changes:  []LineRangeMapping{{Original: lr(1, 1), Modified: lr(1, 3)}},
			want:     []TextChange{{OldOffset: 0, NewOffset: 0, NewText: "x\ny"}},
		},
		{
			name:     "insertions around an empty line",
			original: []string{""},
			modified: []string{"cc", "a", "", "bb", "cc"},
			changes: []LineRangeMapping{
				{Original: lr(1, 1), Modified: lr(1, 3)},
				{Original: lr(2, 2), Modified: lr(4, 6)},
			},
			want: []TextChange{{OldOffset: 0, NewOffset: 0, NewText: "cc\na\n\nbb\ncc"}},
		},
		{
			name:     "insertion then tail delete across an empty line",
			original: []string{"", "a"},
			modified: []string{"b", ""},
			changes: []LineRangeMapping{
				{Original: lr(1, 1), Modified: lr(1, 2)},
				{Original: lr(2, 3), Modified: lr(3, 3)},
			},
			want: []TextChange{{OldOffset: 0, OldText: "\na", NewOffset: 0, NewText: "b\n"}},
		},
		{
			name:     "inner change",
			original: []string{"ab", "c"},
			modified: []string{"aXb", "c"},
			changes: []LineRangeMapping{{
				Original: lr(1, 2),
				Modified: lr(1, 2),
				InnerChanges: []RangeMapping{{
					Original: Range{Position{1, 2}, Position{1, 2}},
					Modified: Range{Position{1, 2}, Position{1, 3}},
				}},
			}},
			want: []TextChange{{OldOffset: 1, NewOffset: 1, NewText: "X"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := LinesDiff{Changes: tt.changes}
			got, err := d.TextChanges(tt.original, tt.modified)
			if err != nil {
				t.Fatalf("TextChanges: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TextChanges mismatch (-want +got):\n%s", diff)
			}
			text, err := ApplyTextChanges(strings.Join(tt.original, "\n"), got)
			if err != nil {
				t.Fatalf("ApplyTextChanges: %v", err)
			}
			if want := strings.Join(tt.modified, "\n"); text != want {
				t.Errorf("applied text = %q, want %q", text, want)
			}
			lines, err := d.Apply(tt.original, tt.modified)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(tt.modified, lines, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyRejectsBadInnerChanges(t *testing.T) {
	d := LinesDiff{Changes: []LineRangeMapping{{
		Original: lr(1, 2),
		Modified: lr(1, 2),
		InnerChanges: []RangeMapping{{
			Original: Range{Position{1, 1}, Position{1, 9}},
			Modified: Range{Position{1, 1}, Position{1, 2}},
		}},
	}}}
	if _, err := d.Apply([]string{"ab"}, []string{"x"}); !errors.Is(err, ErrInvalidDiff) {
		t.Errorf("Apply error = %v, want ErrInvalidDiff", err)
	}
}
