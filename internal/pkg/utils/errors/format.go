package errors

import (
	"strings"
)

const (
	Indent = "  "
	Bullet = "- "

	// maxInlineLength limits when a nested error is rendered on one line.
	maxInlineLength = 60
)

// Format renders the error as a string.
// An error list is rendered as a bullet list,
// a nested error as a prefix followed by its sub-errors.
func Format(err error) string {
	if err == nil {
		panic(New("error cannot be nil"))
	}
	var b strings.Builder
	writeError(&b, 0, err, true)
	return b.String()
}

func writeError(b *strings.Builder, level int, err error, first bool) {
	// nolint: errorlint
	switch v := err.(type) {
	case nestedErrorGetter:
		writeNestedError(b, level, v, first)
	case multiErrorGetter:
		errs := v.WrappedErrors()
		switch len(errs) {
		case 0:
		case 1:
			writeError(b, level, errs[0], first)
		default:
			writeList(b, level, errs, first)
		}
	default:
		b.WriteString(err.Error())
	}
}

func writeNestedError(b *strings.Builder, level int, v nestedErrorGetter, first bool) {
	main := v.MainError().Error()
	errs := v.WrappedErrors()
	if len(errs) == 0 {
		b.WriteString(main)
		return
	}

	prefix := strings.TrimRight(main, ".,:") + ":"

	// A single short sub-error stays on the prefix line
	if len(errs) == 1 {
		var sub strings.Builder
		writeError(&sub, level, errs[0], true)
		if s := sub.String(); !strings.Contains(s, "\n") && len(prefix)+len(s) < maxInlineLength {
			b.WriteString(prefix)
			b.WriteString(" ")
			b.WriteString(s)
			return
		}
	}

	b.WriteString(prefix)
	writeList(b, level, errs, false)
}

func writeList(b *strings.Builder, level int, errs []error, first bool) {
	for i, err := range errs {
		if !first || i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(Indent, level))
		b.WriteString(Bullet)
		writeError(b, level+1, err, true)
	}
}
