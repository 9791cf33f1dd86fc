package defcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for identifier parsing and conversion failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrEmptyInput indicates Parse was given an empty string.
	ErrEmptyInput = errors.New("empty identifier")

	// ErrMissingSeparator indicates the input has no '/' between the
	// category and subtype segments.
	ErrMissingSeparator = errors.New("missing '/' separator")

	// ErrUnknownCategory indicates the category segment does not resolve
	// to a registered category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCategory indicates an attempt to narrow or serialize an
	// identifier whose category is the invalid token.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUnknownHandle indicates a compact identifier's runtime handle does
	// not resolve to a registered category in this process.
	ErrUnknownHandle = errors.New("unknown category handle")

	// ErrShortBuffer indicates a binary buffer is too small to hold a
	// compact identifier.
	ErrShortBuffer = errors.New("buffer too small for compact identifier")
)

// FormatError is returned by Parse when input text cannot be turned into an
// identifier. It records the offending input and wraps one of the sentinel
// causes above, so both errors.Is(err, ErrUnknownCategory) and errors.As
// into *FormatError work.
type FormatError struct {
	// Input is the text that failed to parse.
	Input string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("defcore: parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying cause, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *FormatError) Unwrap() error {
	return e.Err
}
