package textedit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLine      = errors.New("invalid line")
	ErrInvalidChange    = errors.New("invalid text change")
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrTextMismatch     = errors.New("text does not match change")
)

// Side names which input of a diff a line came from.
type Side string

const (
	SideOriginal Side = "original"
	SideModified Side = "modified"
)

// InputError reports a line that cannot be diffed, e.g. one that embeds a line separator.
type InputError struct {
	Side   Side
	Line   int // 1-based
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.Side, e.Line, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidLine
}
