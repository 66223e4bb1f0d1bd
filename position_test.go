package textedit

import (
	"testing"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{1, 1}, Position{1, 1}, 0},
		{Position{1, 5}, Position{2, 1}, -1},
		{Position{3, 1}, Position{2, 9}, 1},
		{Position{2, 2}, Position{2, 3}, -1},
		{Position{2, 4}, Position{2, 3}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewRangeOrdersEnds(t *testing.T) {
	r := NewRange(Position{3, 2}, Position{1, 4})
	if r.Start != (Position{1, 4}) || r.End != (Position{3, 2}) {
		t.Errorf("NewRange = %s", r)
	}
	if !r.ContainsPosition(Position{2, 100}) || r.ContainsPosition(Position{3, 3}) {
		t.Errorf("ContainsPosition wrong for %s", r)
	}
	if r.IsEmpty() || !NewRange(Position{1, 1}, Position{1, 1}).IsEmpty() {
		t.Errorf("IsEmpty wrong")
	}
}

func TestSelectionDirection(t *testing.T) {
	anchor, active := Position{2, 5}, Position{1, 1}
	s := NewSelection(anchor, active)
	if s.Direction != RTL {
		t.Fatalf("Direction = %s, want RTL", s.Direction)
	}
	if s.Anchor() != anchor || s.Active() != active {
		t.Errorf("Anchor/Active = %s/%s", s.Anchor(), s.Active())
	}
	if got, want := s.String(), "[1,1 -> 2,5] RTL"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s = NewSelection(active, anchor)
	if s.Direction != LTR || s.Anchor() != active || s.Active() != anchor {
		t.Errorf("LTR selection = %+v", s)
	}
	if c := CursorSelection(Position{4, 2}); !c.IsEmpty() || c.Direction != LTR {
		t.Errorf("CursorSelection = %+v", c)
	}
	if got := Direction(7).String(); got != "Direction(7)" {
		t.Errorf("Direction(7).String() = %q", got)
	}
}

func TestParseEOL(t *testing.T) {
	tests := []struct {
		in      string
		want    EOL
		wantSeq string
		wantErr bool
	}{
		{in: "LF", want: LF, wantSeq: "\n"},
		{in: "crlf", want: CRLF, wantSeq: "\r\n"},
		{in: "CR", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEOL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEOL(%q) error = %v", tt.in, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if got != tt.want || got.Sequence() != tt.wantSeq || got.String() != tt.want.String() {
			t.Errorf("ParseEOL(%q) = %s", tt.in, got)
		}
	}
}
