// Package textedit provides the value types shared by the line diff computers and the
// undo/redo edit stack of a text editor.
//
// A diff between two snapshots of a buffer is described by a LinesDiff: an ordered list of
// LineRangeMapping values that pair a LineRange of the original with a LineRange of the
// modified text, optionally refined by character level RangeMapping values. Diffs are produced
// by a LinesDiffComputer; see the diff package for the available strategies.
//
// Individual edits are described by TextChange values. A batch of TextChange values, plus
// selections and line endings, makes up one undo/redo entry; see the editstack package.
//
// Example usage:
//
//	computer := diff.Default.New()
//	d, err := computer.ComputeDiff(original, modified, textedit.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range d.Changes {
//		fmt.Printf("%s -> %s\n", c.Original, c.Modified)
//	}
//
// Lines never contain line separators. Columns and offsets count Unicode code points.
package textedit
