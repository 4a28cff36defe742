// Package errors extends the standard errors package with stack traces, wrapped errors,
// errors with a prefix and lists of errors. All errors in the project are created by this package.
package errors

import (
	"errors"
	"fmt"
)

type wrappedError struct {
	msg   string
	cause error
	trace StackTrace
}

type withStack struct {
	error
	trace StackTrace
}

func New(message string) error {
	return &withStack{error: errors.New(message), trace: callers()}
}

// Errorf creates an error with a stack trace, the %w verb is supported.
func Errorf(format string, a ...any) error {
	return &withStack{error: fmt.Errorf(format, a...), trace: callers()}
}

// Wrap returns an error with a new message, the cause is accessible by Unwrap but not part of the message.
func Wrap(err error, message string) error {
	return &wrappedError{msg: message, cause: err, trace: callers()}
}

// Wrapf is a formatted version of the Wrap.
func Wrapf(err error, format string, a ...any) error {
	return &wrappedError{msg: fmt.Sprintf(format, a...), cause: err, trace: callers()}
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &withStack{error: err, trace: callers()}
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

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

func (e *wrappedError) StackTrace() StackTrace {
	return e.trace
}

func (e *withStack) Unwrap() error {
	return e.error
}

func (e *withStack) StackTrace() StackTrace {
	return e.trace
}
