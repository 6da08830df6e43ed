package lnk

import (
	"errors"
	"fmt"

	"github.com/andrewstucki/lnkinfo/internal"
)

var (
	// ErrInvalidFormat is matched by every structural decoding failure.
	ErrInvalidFormat = errors.New("invalid shortcut format")
	// ErrIO is matched when the shortcut bytes could not be read.
	ErrIO = errors.New("unable to read shortcut")
)

// FormatError reports the field that could not be decoded.
type FormatError struct {
	Field  string
	Offset int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	reason := e.Reason
	if e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("%v: %s at offset %d: %s", ErrInvalidFormat, e.Field, e.Offset, reason)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func invalid(field string, offset int, reason string, args ...interface{}) *FormatError {
	return &FormatError{Field: field, Offset: offset, Reason: fmt.Sprintf(reason, args...)}
}

// fieldError attaches field context to a bounds failure.
func fieldError(field string, offset int, err error) error {
	if err == nil {
		return nil
	}
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		return err
	}
	if errors.Is(err, internal.ErrOutOfRange) {
		return &FormatError{Field: field, Offset: offset, Err: err}
	}
	return err
}
