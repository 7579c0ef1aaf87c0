package webvtt

import (
	"errors"
	"fmt"
)

// Error kinds reported by the parsers. Every parse failure is a *ParseError
// whose Kind is one of these, so callers can branch with errors.Is.
var (
	ErrInvalidFormat       = errors.New("invalid format")
	ErrInvalidHours        = errors.New("invalid hours")
	ErrInvalidMinutes      = errors.New("invalid minutes")
	ErrInvalidSeconds      = errors.New("invalid seconds")
	ErrInvalidMilliseconds = errors.New("invalid milliseconds")
	ErrInvalidSetting      = errors.New("invalid setting")
	ErrMissingHeader       = errors.New("missing WEBVTT header")
	ErrInvalidMetadataLine = errors.New("invalid metadata line")
)

// ParseError describes why an input was rejected.
type ParseError struct {
	Kind     error  // one of the Err* kinds above
	Fragment string // offending token, line or timestamp text, if any
	Line     int    // 1-based input line, 0 when unknown
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Fragment != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Fragment)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newError(kind error, fragment string) *ParseError {
	return &ParseError{Kind: kind, Fragment: fragment}
}

// atLine stamps a line number on err unless a more precise one is already set.
func atLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line = line
	}
	return err
}

// shiftLine converts a block-relative line number into an input line number.
func shiftLine(err error, offset int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line > 0 {
		pe.Line += offset
	}
	return err
}
