// Package editstack records edits as undo/redo entries and encodes them in a compact binary
// form.
package editstack

import (
	"fmt"
	"math"

	textedit "github.com/arran4/golang-textedit"
)

// SingleModelEditStackData is one undo/redo entry for a single text model: the versions and
// cursor state on both sides of the edit and the batch of changes between them.
//
// Change offsets count code points of the text with its lines joined by "\n", whatever the
// model's EOL.
type SingleModelEditStackData struct {
	BeforeVersionID  int32
	AfterVersionID   int32
	BeforeEOL        textedit.EOL
	AfterEOL         textedit.EOL
	BeforeSelections []textedit.Selection
	AfterSelections  []textedit.Selection
	Changes          []textedit.TextChange
}

// NewSingleModelEditStackData builds an entry, rejecting a change batch that is out of order
// or overlapping and selections that do not fit the binary form.
func NewSingleModelEditStackData(beforeVersionID, afterVersionID int32, beforeEOL, afterEOL textedit.EOL, beforeSelections, afterSelections []textedit.Selection, changes []textedit.TextChange) (*SingleModelEditStackData, error) {
	if err := textedit.ValidateChanges(changes); err != nil {
		return nil, err
	}
	if err := validateSelections(beforeSelections, afterSelections); err != nil {
		return nil, err
	}
	return &SingleModelEditStackData{
		BeforeVersionID:  beforeVersionID,
		AfterVersionID:   afterVersionID,
		BeforeEOL:        beforeEOL,
		AfterEOL:         afterEOL,
		BeforeSelections: beforeSelections,
		AfterSelections:  afterSelections,
		Changes:          changes,
	}, nil
}

// FromLinesDiff builds the entry that turns before into after, using d as computed between
// their lines. Selections are left for the caller.
func FromLinesDiff(d textedit.LinesDiff, before, after textedit.TextModel, beforeVersionID, afterVersionID int32) (*SingleModelEditStackData, error) {
	changes, err := d.TextChanges(before.Lines(), after.Lines())
	if err != nil {
		return nil, fmt.Errorf("converting diff: %w", err)
	}
	return NewSingleModelEditStackData(beforeVersionID, afterVersionID, before.EOL(), after.EOL(), nil, nil, changes)
}

// Apply redoes the entry over text in its before state.
func (d *SingleModelEditStackData) Apply(text string) (string, error) {
	return textedit.ApplyTextChanges(text, d.Changes)
}

// Revert undoes the entry over text in its after state.
func (d *SingleModelEditStackData) Revert(text string) (string, error) {
	return textedit.RevertTextChanges(text, d.Changes)
}

func (d *SingleModelEditStackData) String() string {
	return fmt.Sprintf("v%d->v%d %s->%s %d changes", d.BeforeVersionID, d.AfterVersionID, d.BeforeEOL, d.AfterEOL, len(d.Changes))
}

// validateSelections checks that every coordinate fits the 32-bit fields of the binary form
// and that the direction is one Deserialize accepts.
func validateSelections(lists ...[]textedit.Selection) error {
	for _, sels := range lists {
		for i, s := range sels {
			for _, v := range [...]int{s.Start.Line, s.Start.Column, s.End.Line, s.End.Column} {
				if v < math.MinInt32 || v > math.MaxInt32 {
					return fmt.Errorf("%w: selection %d %s has a coordinate beyond 32 bits", ErrInvalidSelection, i, s.Range)
				}
			}
			if s.Direction != textedit.LTR && s.Direction != textedit.RTL {
				return fmt.Errorf("%w: selection %d has direction %s", ErrInvalidSelection, i, s.Direction)
			}
		}
	}
	return nil
}
