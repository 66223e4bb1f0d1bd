package editstack

import (
	"encoding/binary"
	"fmt"
	"math"

	textedit "github.com/arran4/golang-textedit"
)

// Binary layout, little-endian:
//
//	[formatVersion:1][beforeVersionId:4][afterVersionId:4][beforeEOL:1][afterEOL:1]
//	[beforeSelectionCount:4][selection...][afterSelectionCount:4][selection...]
//	[changeCount:4][change...]
//
//	selection = [startLine:4][startColumn:4][endLine:4][endColumn:4][direction:1]
//	change    = [oldOffset:uvarint][newOffset:uvarint][oldLen:4][old bytes][newLen:4][new bytes]
const formatVersion = 1

const (
	selectionSize = 4*4 + 1
	// minChangeSize is a change with one byte varints and empty texts.
	minChangeSize = 1 + 1 + 4 + 4
)

// Serialize encodes the entry. Offsets are assumed non-negative and selection coordinates to
// fit in 32 bits, which NewSingleModelEditStackData guarantees.
func (d *SingleModelEditStackData) Serialize() []byte {
	size := 1 + 4 + 4 + 1 + 1 + 4 + 4 + 4 + selectionSize*(len(d.BeforeSelections)+len(d.AfterSelections))
	for _, c := range d.Changes {
		size += 2*binary.MaxVarintLen64 + 4 + len(c.OldText) + 4 + len(c.NewText)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, formatVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(d.BeforeVersionID))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(d.AfterVersionID))
	buf = append(buf, byte(d.BeforeEOL), byte(d.AfterEOL))
	buf = appendSelections(buf, d.BeforeSelections)
	buf = appendSelections(buf, d.AfterSelections)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.Changes)))
	for _, c := range d.Changes {
		buf = binary.AppendUvarint(buf, uint64(c.OldOffset))
		buf = binary.AppendUvarint(buf, uint64(c.NewOffset))
		buf = appendString(buf, c.OldText)
		buf = appendString(buf, c.NewText)
	}
	return buf
}

func appendSelections(buf []byte, sels []textedit.Selection) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(sels)))
	for _, s := range sels {
		for _, v := range [...]int{s.Start.Line, s.Start.Column, s.End.Line, s.End.Column} {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(v)))
		}
		buf = append(buf, byte(s.Direction))
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// MarshalBinary implements encoding.BinaryMarshaler. Unlike Serialize it refuses an invalid
// change batch and selections the format cannot hold.
func (d *SingleModelEditStackData) MarshalBinary() ([]byte, error) {
	if err := textedit.ValidateChanges(d.Changes); err != nil {
		return nil, err
	}
	if err := validateSelections(d.BeforeSelections, d.AfterSelections); err != nil {
		return nil, err
	}
	return d.Serialize(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. d is left untouched on error.
func (d *SingleModelEditStackData) UnmarshalBinary(buf []byte) error {
	decoded, err := Deserialize(buf)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// Deserialize decodes an entry written by Serialize. The whole buffer must be consumed.
func Deserialize(buf []byte) (*SingleModelEditStackData, error) {
	r := &reader{buf: buf}
	version, err := r.u8()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, &FormatError{Offset: 0, Reason: fmt.Sprintf("unknown format version %d", version)}
	}

	d := &SingleModelEditStackData{}
	if d.BeforeVersionID, err = r.i32(); err != nil {
		return nil, err
	}
	if d.AfterVersionID, err = r.i32(); err != nil {
		return nil, err
	}
	if d.BeforeEOL, err = r.eol(); err != nil {
		return nil, err
	}
	if d.AfterEOL, err = r.eol(); err != nil {
		return nil, err
	}
	if d.BeforeSelections, err = r.selections(); err != nil {
		return nil, err
	}
	if d.AfterSelections, err = r.selections(); err != nil {
		return nil, err
	}
	if d.Changes, err = r.changes(); err != nil {
		return nil, err
	}
	if r.off != len(r.buf) {
		return nil, &FormatError{Offset: r.off, Reason: fmt.Sprintf("%d trailing bytes", len(r.buf)-r.off)}
	}
	return d, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) need(n int) error {
	if have := len(r.buf) - r.off; n > have {
		return &TruncatedBufferError{Offset: r.off, Need: n, Have: have}
	}
	return nil
}

func (r *reader) u8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) uvarint() (int, error) {
	v, n := binary.Uvarint(r.buf[r.off:])
	switch {
	case n == 0:
		return 0, &TruncatedBufferError{Offset: r.off, Need: len(r.buf) - r.off + 1, Have: len(r.buf) - r.off}
	case n < 0:
		return 0, &FormatError{Offset: r.off, Reason: "varint overflows 64 bits"}
	case v > math.MaxInt:
		return 0, &FormatError{Offset: r.off, Reason: fmt.Sprintf("offset %d out of range", v)}
	}
	r.off += n
	return int(v), nil
}

// count reads an element count and checks that that many elements of at least minSize bytes
// fit in the rest of the buffer, so that a corrupt count never drives an allocation.
func (r *reader) count(minSize int) (int, error) {
	start := r.off
	c, err := r.u32()
	if err != nil {
		return 0, err
	}
	need := uint64(c) * uint64(minSize)
	if have := uint64(len(r.buf) - r.off); need > have {
		return 0, &TruncatedBufferError{Offset: start, Need: int(min(need, math.MaxInt32)), Have: int(have)}
	}
	return int(c), nil
}

func (r *reader) str() (string, error) {
	n, err := r.count(1)
	if err != nil {
		return "", err
	}
	s := string(r.buf[r.off : r.off+n])
	r.off += n
	return s, nil
}

func (r *reader) eol() (textedit.EOL, error) {
	off := r.off
	b, err := r.u8()
	if err != nil {
		return 0, err
	}
	switch e := textedit.EOL(b); e {
	case textedit.LF, textedit.CRLF:
		return e, nil
	}
	return 0, &FormatError{Offset: off, Reason: fmt.Sprintf("unknown line ending %d", b)}
}

func (r *reader) selections() ([]textedit.Selection, error) {
	n, err := r.count(selectionSize)
	if err != nil || n == 0 {
		return nil, err
	}
	sels := make([]textedit.Selection, n)
	for i := range sels {
		var v [4]int32
		for k := range v {
			if v[k], err = r.i32(); err != nil {
				return nil, err
			}
		}
		off := r.off
		b, err := r.u8()
		if err != nil {
			return nil, err
		}
		dir := textedit.Direction(b)
		if dir != textedit.LTR && dir != textedit.RTL {
			return nil, &FormatError{Offset: off, Reason: fmt.Sprintf("unknown selection direction %d", b)}
		}
		sels[i] = textedit.Selection{
			Range: textedit.Range{
				Start: textedit.Position{Line: int(v[0]), Column: int(v[1])},
				End:   textedit.Position{Line: int(v[2]), Column: int(v[3])},
			},
			Direction: dir,
		}
	}
	return sels, nil
}

func (r *reader) changes() ([]textedit.TextChange, error) {
	n, err := r.count(minChangeSize)
	if err != nil || n == 0 {
		return nil, err
	}
	changes := make([]textedit.TextChange, n)
	for i := range changes {
		c := &changes[i]
		if c.OldOffset, err = r.uvarint(); err != nil {
			return nil, err
		}
		if c.NewOffset, err = r.uvarint(); err != nil {
			return nil, err
		}
		if c.OldText, err = r.str(); err != nil {
			return nil, err
		}
		if c.NewText, err = r.str(); err != nil {
			return nil, err
		}
	}
	return changes, nil
}
