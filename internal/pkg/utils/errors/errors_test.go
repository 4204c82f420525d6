package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

func TestMultiError_Empty(t *testing.T) {
	t.Parallel()
	errs := errors.NewMultiError()
	assert.Equal(t, 0, errs.Len())
	assert.NoError(t, errs.ErrorOrNil())
}

func TestMultiError_Single(t *testing.T) {
	t.Parallel()
	errs := errors.NewMultiError()
	errs.Append(errors.New("some error"))
	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.Equal(t, "some error", err.Error())
}

func TestMultiError_NilIsIgnored(t *testing.T) {
	t.Parallel()
	errs := errors.NewMultiError()
	errs.Append(nil, errors.New("some error"), nil)
	assert.Equal(t, 1, errs.Len())
}

func TestMultiError_Flatten(t *testing.T) {
	t.Parallel()
	sub := errors.NewMultiError()
	sub.Append(errors.New("sub 1"))
	sub.Append(errors.New("sub 2"))

	errs := errors.NewMultiError()
	errs.Append(errors.New("main"))
	errs.Append(sub)

	assert.Equal(t, 3, errs.Len())
	expected := `
- main
- sub 1
- sub 2
`
	assert.Equal(t, strings.TrimSpace(expected), errs.Error())
}

func TestNestedError_LongSubErrorBreaksLine(t *testing.T) {
	t.Parallel()
	err := errors.PrefixError(
		errors.New("a very long explanation of the underlying problem, too long for one line"),
		"cannot do the operation",
	)
	expected := `
cannot do the operation:
- a very long explanation of the underlying problem, too long for one line
`
	assert.Equal(t, strings.TrimSpace(expected), err.Error())
}

func TestNestedError_Indentation(t *testing.T) {
	t.Parallel()
	err := errors.NewNestedError(
		errors.New("main"),
		errors.NewNestedError(errors.New("nested"), errors.New("sub 1"), errors.New("sub 2")),
		errors.New("other"),
	)
	expected := `
main:
- nested:
  - sub 1
  - sub 2
- other
`
	assert.Equal(t, strings.TrimSpace(expected), err.Error())
}

func TestWrap_ReplacesMessage(t *testing.T) {
	t.Parallel()
	original := errors.New("original error")
	err := errors.Wrapf(original, "new error %s", "message")
	assert.Equal(t, "new error message", err.Error())
	assert.True(t, errors.Is(err, original))
}

func TestPrefixError_Unwrap(t *testing.T) {
	t.Parallel()
	original := errors.New("original error")
	err := errors.PrefixError(original, "prefix")
	assert.True(t, errors.Is(err, original))
}
