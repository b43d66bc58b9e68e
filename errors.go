package main

import (
	"errors"
	"fmt"
)

// Kinds of parse errors. Use with errors.Is.
var (
	// ErrMalformedShape is returned when a unit doesn't have the expected separators or digits.
	ErrMalformedShape = errors.New("malformed shape")

	// ErrInvalidCalendarDate is returned when a well formed date doesn't exist.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrInvalidPeriodName is returned when a period name isn't p<single digit number>.
	ErrInvalidPeriodName = errors.New("invalid period name")

	// ErrInvalidCounterValue is returned when a counter isn't an unsigned integer.
	ErrInvalidCounterValue = errors.New("invalid counter value")

	// ErrEmptyUnit is returned when a list contains an empty segment.
	ErrEmptyUnit = errors.New("empty unit")

	// ErrInvalidHour is returned when a time window hour isn't in the day.
	ErrInvalidHour = errors.New("invalid hour")
)

// ParseError describes why a raw list argument was rejected.
type ParseError struct {
	Kind   error  // one of the Err* kinds
	Input  string // the whole raw list
	Part   string // the offending substring
	Reason string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s in %q, part %q: %s", e.Kind, e.Input, e.Part, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newParseError(kind error, input, part, reason string, cause error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Part: part, Reason: reason, Err: cause}
}

// IsParseError returns true if the error is due to an invalid user input list.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
