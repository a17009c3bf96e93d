package accountid

import (
	"errors"
	"fmt"
)

// ErrInvalidAccountID indicates that the provided string is not a valid
// NEAR account ID. Every *ParseError wraps it, so callers that do not care
// about the exact violation can test with errors.Is.
var ErrInvalidAccountID = errors.New("invalid account ID")

// ErrorKind identifies the first rule an account ID string violated.
type ErrorKind uint8

// The closed set of validation failures.
const (
	// KindTooShort indicates the input is shorter than MinLen.
	KindTooShort ErrorKind = iota

	// KindTooLong indicates the input is longer than MaxLen.
	KindTooLong

	// KindInvalidChar indicates a character outside [a-z0-9-_.].
	KindInvalidChar

	// KindRedundantSeparator indicates a separator at the start or end of
	// the input, or immediately after another separator.
	KindRedundantSeparator
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindTooShort:
		return "TooShort"
	case KindTooLong:
		return "TooLong"
	case KindInvalidChar:
		return "InvalidChar"
	case KindRedundantSeparator:
		return "RedundantSeparator"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError reports why a string failed account ID validation.
//
// If an input has multiple violations, the first one in reading order is
// reported: validating "a__ffluent." yields KindRedundantSeparator at
// index 2, even though the trailing '.' also violates the rules.
type ParseError struct {
	// Kind is the rule that was violated.
	Kind ErrorKind

	// Index is the byte offset of the offending character. It is -1 for
	// the length violations, which have no single offending position.
	Index int

	// Char is the offending byte, zero for the length violations.
	Char byte
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindTooShort:
		return fmt.Sprintf("invalid account ID: shorter than %d characters", MinLen)
	case KindTooLong:
		return fmt.Sprintf("invalid account ID: longer than %d characters", MaxLen)
	case KindRedundantSeparator:
		return fmt.Sprintf("invalid account ID: redundant separator %q at offset %d", e.Char, e.Index)
	default:
		return fmt.Sprintf("invalid account ID: character %q at offset %d is not allowed", e.Char, e.Index)
	}
}

// Unwrap makes errors.Is(err, ErrInvalidAccountID) hold for every
// validation failure.
func (e *ParseError) Unwrap() error {
	return ErrInvalidAccountID
}
