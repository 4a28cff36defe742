package errors

import (
	"fmt"
)

// NestedError is an error with a main message and a list of sub errors, for example:
//
//	cannot load component "atoms/icon":
//	- file "src/atoms/icon/ace.json" is not valid JSON
type NestedError interface {
	Len() int
	Error() string
	Unwrap() []error
	StackTrace() StackTrace
	MainError() error
	WrappedErrors() []error
}

type nestedErrorGetter interface {
	MainError() error
	WrappedErrors() []error
}

type nestedError struct {
	main      error
	subErrors MultiError
	trace     StackTrace
}

func NewNestedError(main error, subErrs ...error) NestedError {
	if main == nil {
		panic("error cannot be nil")
	}
	sub := NewMultiError()
	sub.Append(subErrs...)
	return &nestedError{main: main, subErrors: sub, trace: callers()}
}

func PrefixError(err error, prefix string) error {
	return NewNestedError(New(prefix), err)
}

func PrefixErrorf(err error, format string, a ...any) error {
	return NewNestedError(New(fmt.Sprintf(format, a...)), err)
}

func (e *nestedError) Len() int {
	return e.subErrors.Len()
}

func (e *nestedError) Error() string {
	return Format(e)
}

func (e *nestedError) Unwrap() []error {
	return append([]error{e.main}, e.subErrors.WrappedErrors()...)
}

func (e *nestedError) StackTrace() StackTrace {
	return e.trace
}

func (e *nestedError) MainError() error {
	return e.main
}

func (e *nestedError) WrappedErrors() []error {
	return e.subErrors.WrappedErrors()
}
