package errors

type nestedErrorGetter interface {
	MainError() error
	WrappedErrors() []error
}

type nestedError struct {
	main error
	errs []error
}

// PrefixError wraps the error with a prefix message, for example "cannot load file".
func PrefixError(err error, prefix string) error {
	return NewNestedError(New(prefix), err)
}

// PrefixErrorf wraps the error with a formatted prefix message.
func PrefixErrorf(err error, format string, a ...any) error {
	return NewNestedError(Errorf(format, a...), err)
}

// NewNestedError creates an error with a main message and a list of sub-errors.
func NewNestedError(main error, errs ...error) error {
	if main == nil {
		panic(New("main error cannot be nil"))
	}

	out := &nestedError{main: main}
	for _, err := range errs {
		// Flatten a sub-list to the same level
		if v, ok := err.(multiErrorGetter); ok { // nolint: errorlint
			out.errs = append(out.errs, v.WrappedErrors()...)
		} else {
			out.errs = append(out.errs, err)
		}
	}
	return out
}

func (e *nestedError) Error() string {
	return Format(e)
}

func (e *nestedError) Unwrap() []error {
	return append([]error{e.main}, e.errs...)
}

func (e *nestedError) MainError() error {
	return e.main
}

func (e *nestedError) WrappedErrors() []error {
	return e.errs
}
