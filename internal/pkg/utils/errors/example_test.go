package errors_test

import (
	"fmt"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

func ExampleNew() {
	fmt.Println(errors.New("some error"))
	// output:
	// some error
}

func ExampleErrorf() {
	err := errors.Errorf("enhanced error message: %w", errors.New("original error"))
	fmt.Println(err)
	// output:
	// enhanced error message: original error
}

func ExampleWrap() {
	err := errors.Wrap(errors.New("original error"), "new error message")
	fmt.Println(err)
	// output:
	// new error message
}

func ExamplePrefixError() {
	err := errors.PrefixError(errors.New("file not found"), "cannot load configuration")
	fmt.Println(err)
	// output:
	// cannot load configuration: file not found
}

func ExampleNewNestedError() {
	err := errors.NewNestedError(
		errors.New("foo"),
		errors.New("bar1"),
		errors.New("bar2"),
	)
	fmt.Println(errors.Format(err))
	// output:
	// foo:
	// - bar1
	// - bar2
}

func ExampleNewMultiError() {
	errs := errors.NewMultiError()
	errs.Append(errors.New("foo 1"))
	errs.Append(errors.New("foo 2"))
	errs.AppendWithPrefix(errors.New("underlying problem"), "foo 3")
	fmt.Println(errors.Format(errs.ErrorOrNil()))
	// output:
	// - foo 1
	// - foo 2
	// - foo 3: underlying problem
}
