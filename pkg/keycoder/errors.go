package keycoder

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by Unpack and UnpackMany when the input does not
// begin with the requested prefix. It is a sentinel, not a malformed-input
// error: the caller is expected to check for it with errors.Is.
var ErrNoMatch = errors.New("keycoder: prefix does not match")

// FormatError reports malformed key bytes: a truncated varint or string
// body, an unrecognized kind tag, or a TEXT payload that isn't valid UTF-8.
type FormatError struct {
	Msg      string
	Expected int // bytes the reader needed
	Position int // reader position when the shortfall was detected
	Remaining int // bytes actually left in the input
}

func (e *FormatError) Error() string {
	if e.Expected > 0 || e.Remaining > 0 {
		return fmt.Sprintf("keycoder: %s: expected %d bytes at position %d, but only %d remain",
			e.Msg, e.Expected, e.Position, e.Remaining)
	}
	return "keycoder: " + e.Msg
}

func newTruncationError(msg string, expected, position, remaining int) *FormatError {
	return &FormatError{Msg: msg, Expected: expected, Position: position, Remaining: remaining}
}

// TypeError is returned by the value encoder when it is handed a Go value
// whose runtime type has no wire representation.
type TypeError struct {
	TypeName string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("keycoder: got unsupported type %s", e.TypeName)
}

// ValueError is returned when the caller's arguments are structurally
// invalid independent of the bytes being decoded — currently just an input
// shorter than the prefix it's being matched against.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string {
	return "keycoder: " + e.Msg
}
