package editstack

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is wrapped by every FormatError.
	ErrUnsupportedFormat = errors.New("unsupported edit stack format")
	// ErrTruncated is wrapped by every TruncatedBufferError.
	ErrTruncated = errors.New("truncated edit stack buffer")
	// ErrInvalidSelection is returned for a selection the binary form cannot hold.
	ErrInvalidSelection = errors.New("invalid selection")
)

// FormatError reports bytes that cannot be decoded: an unknown version or enum value, an
// overflowing varint, or bytes left over after the last change.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("edit stack data: %s at byte %d", e.Reason, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// TruncatedBufferError reports a buffer that ends before the value being read.
type TruncatedBufferError struct {
	Offset int // where the read started
	Need   int // bytes the read requires
	Have   int // bytes left in the buffer
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("edit stack data: need %d bytes at byte %d, have %d", e.Need, e.Offset, e.Have)
}

func (e *TruncatedBufferError) Unwrap() error {
	return ErrTruncated
}
