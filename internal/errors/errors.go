// Package errors re-exports the stdlib error predicates alongside the
// pkg/errors wrappers, so call sites get stack traces and errors.Is/As from a
// single import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree matching target's type.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a message and a stack trace.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message and a stack trace.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack attaches a stack trace to err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
