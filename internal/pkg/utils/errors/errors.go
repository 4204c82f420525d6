// Package errors provides creation, aggregation and formatting of errors.
//
// Multiple errors can be collected into a MultiError and rendered as a bullet
// list. PrefixError attaches a context message to an error or to a whole list.
package errors

import (
	"errors"
	"fmt"
)

func New(text string) error {
	return errors.New(text)
}

// Errorf formats a new error, the %w verb is supported.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Wrap replaces the error message, the original error is available via Unwrap.
func Wrap(err error, message string) error {
	return &wrappedError{message: message, err: err}
}

// Wrapf replaces the error message, the original error is available via Unwrap.
func Wrapf(err error, format string, a ...any) error {
	return &wrappedError{message: fmt.Sprintf(format, a...), err: err}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

type wrappedError struct {
	message string
	err     error
}

func (e *wrappedError) Error() string {
	return e.message
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
