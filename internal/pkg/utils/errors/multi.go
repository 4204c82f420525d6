package errors

import (
	"sync"
)

// MultiError is a list of errors rendered as a bullet list, safe for concurrent appends.
type MultiError interface {
	error
	Len() int
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
	lock sync.Mutex
	errs []error
}

func NewMultiError(errs ...error) MultiError {
	e := &multiError{}
	e.Append(errs...)
	return e
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.errs)
}

func (e *multiError) Unwrap() []error {
	return e.WrappedErrors()
}

func (e *multiError) WrappedErrors() []error {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// ErrorOrNil returns nil if the list is empty,
// the only error if it contains exactly one, otherwise the list itself.
func (e *multiError) ErrorOrNil() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
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
		// Flatten nested lists
		if v, ok := err.(multiErrorGetter); ok { // nolint: errorlint
			e.errs = append(e.errs, v.WrappedErrors()...)
		} else {
			e.errs = append(e.errs, err)
		}
	}
}

func (e *multiError) AppendWithPrefix(err error, prefix string) {
	e.Append(PrefixError(err, prefix))
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.Append(PrefixErrorf(err, format, a...))
}
