package errors

import (
	"sync"
)

type MultiError interface {
	Len() int
	Error() string
	Unwrap() []error
	WrappedErrors() []error
	ErrorOrNil() error
	Append(errs ...error)
	AppendWithPrefix(err error, prefix string)
	AppendWithPrefixf(err error, format string, a ...any)
}

type multiErrorGetter interface {
	WrappedErrors() []error
}

type multiError struct {
	lock   *sync.Mutex
	errors []error
}

func NewMultiError() MultiError {
	return &multiError{lock: &sync.Mutex{}}
}

func (e *multiError) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.errors)
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) Unwrap() []error {
	return e.WrappedErrors()
}

func (e *multiError) WrappedErrors() []error {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := make([]error, len(e.errors))
	copy(out, e.errors)
	return out
}

// ErrorOrNil returns nil if there is no error, single error if there is one, otherwise the list.
func (e *multiError) ErrorOrNil() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	switch len(e.errors) {
	case 0:
		return nil
	case 1:
		return e.errors[0]
	default:
		return e
	}
}

func (e *multiError) Append(errs ...error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for _, err := range errs {
		if err == nil {
			continue
		}
		// Flatten nested multi errors
		if v, ok := err.(*multiError); ok { // nolint: errorlint
			e.errors = append(e.errors, v.WrappedErrors()...)
		} else {
			e.errors = append(e.errors, err)
		}
	}
}

func (e *multiError) AppendWithPrefix(err error, prefix string) {
	e.Append(PrefixError(err, prefix))
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.Append(PrefixErrorf(err, format, a...))
}
