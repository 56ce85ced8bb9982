package ninepatch

import (
	"errors"
	"fmt"
)

// Errors reported while decoding a nine-patch bitmap. They are always
// wrapped in a *DecodeError; test for them with errors.Is.
var (
	// ErrMalformedBuffer is returned when the buffer length, row stride or
	// dimensions cannot describe a nine-patch bitmap.
	ErrMalformedBuffer = errors.New("ninepatch: malformed buffer")

	// ErrMalformedMargin is returned when the right or bottom border line
	// declares something other than zero or exactly three runs.
	ErrMalformedMargin = errors.New("ninepatch: malformed margin")
)

// Edge identifies one of the four border lines of a nine-patch bitmap.
type Edge uint8

const (
	// EdgeNone is used for failures not tied to a border line.
	EdgeNone Edge = iota
	// EdgeTop is the top row; it defines horizontal segments.
	EdgeTop
	// EdgeLeft is the left column; it defines vertical segments.
	EdgeLeft
	// EdgeRight is the right column; it declares the top and bottom margins.
	EdgeRight
	// EdgeBottom is the bottom row; it declares the left and right margins.
	EdgeBottom
)

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// DecodeError describes why a buffer was rejected.
type DecodeError struct {
	// Kind is ErrMalformedBuffer or ErrMalformedMargin.
	Kind error
	// Edge is the offending border line, EdgeNone for buffer errors.
	Edge Edge
	// Reason is a human readable detail.
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Edge == EdgeNone {
		return e.Kind.Error() + ": " + e.Reason
	}
	return e.Kind.Error() + ": " + e.Edge.String() + " edge: " + e.Reason
}

// Unwrap returns Kind so errors.Is matches the sentinel errors.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func bufferError(format string, args ...any) error {
	return &DecodeError{Kind: ErrMalformedBuffer, Reason: fmt.Sprintf(format, args...)}
}

func marginError(edge Edge, n int) error {
	return &DecodeError{
		Kind:   ErrMalformedMargin,
		Edge:   edge,
		Reason: fmt.Sprintf("got %d segments, want 0 or 3", n),
	}
}
