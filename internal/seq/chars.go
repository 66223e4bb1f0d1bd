package seq

import (
	"unicode/utf8"

	textedit "github.com/arran4/golang-textedit"
	"github.com/rivo/uniseg"
)

// Chars is the text of a run of lines split into grapheme clusters, with "\n" tokens between
// the lines. Pos holds the document position of every token plus the position just past the
// last one.
type Chars struct {
	Tokens []string
	Pos    []textedit.Position
}

// NewChars tokenises lines, the first of which is document line firstLine.
func NewChars(lines []string, firstLine int) Chars {
	var c Chars
	for i, l := range lines {
		line := firstLine + i
		if i > 0 {
			c.Tokens = append(c.Tokens, "\n")
			c.Pos = append(c.Pos, textedit.Position{Line: line - 1, Column: utf8.RuneCountInString(lines[i-1]) + 1})
		}
		col := 1
		gr := uniseg.NewGraphemes(l)
		for gr.Next() {
			c.Tokens = append(c.Tokens, gr.Str())
			c.Pos = append(c.Pos, textedit.Position{Line: line, Column: col})
			col += len(gr.Runes())
		}
	}
	end := textedit.Position{Line: firstLine, Column: 1}
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		end = textedit.Position{Line: firstLine + len(lines) - 1, Column: utf8.RuneCountInString(last) + 1}
	}
	c.Pos = append(c.Pos, end)
	return c
}

// Range returns the document range covered by tokens [i, j).
func (c Chars) Range(i, j int) textedit.Range {
	return textedit.Range{Start: c.Pos[i], End: c.Pos[j]}
}

// InnerChanges turns a token level hunk list into character RangeMappings.
func InnerChanges(x, y Chars, hunks []Hunk) []textedit.RangeMapping {
	out := make([]textedit.RangeMapping, 0, len(hunks))
	for _, h := range hunks {
		out = append(out, textedit.RangeMapping{
			Original: x.Range(h.X0, h.X1),
			Modified: y.Range(h.Y0, h.Y1),
		})
	}
	return out
}
