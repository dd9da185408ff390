package syntax

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is against an *Error.
var (
	// ErrMalformedPattern covers unbalanced groups or brackets, a trailing
	// backslash and any other structurally invalid pattern.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrEmptyClass is returned when a character class expands to no characters.
	ErrEmptyClass = errors.New("empty character class")

	// ErrInvalidQuantifier is returned for non-numeric bounds or min > max.
	ErrInvalidQuantifier = errors.New("invalid quantifier")
)

// Error describes a pattern that cannot be generated from.
type Error struct {
	// Kind is one of ErrMalformedPattern, ErrEmptyClass or ErrInvalidQuantifier.
	Kind error

	// Offset is the rune index in the original input where the problem was found.
	Offset int

	// Detail is a short human readable explanation.
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Unwrap returns the error kind so errors.Is works with the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

func malformed(offset int, format string, args ...interface{}) error {
	return &Error{Kind: ErrMalformedPattern, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

func emptyClass(offset int, format string, args ...interface{}) error {
	return &Error{Kind: ErrEmptyClass, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

func invalidQuantifier(offset int, format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidQuantifier, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
