package export

import (
	"context"

	"github.com/spf13/cast"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

// Common transforms for the Definition.Transforms map.
// A transform registered for a field overrides direct field access,
// see TransformFunc.

// AsString coerces the field value to a string.
func AsString(field string) TransformFunc {
	return func(_ context.Context, r Record) (any, error) {
		value, found := r.Field(field)
		if !found {
			return nil, errors.Errorf(`record has no field "%s"`, field)
		}
		if value == nil {
			return nil, nil
		}
		return cast.ToStringE(value)
	}
}

// AsInt coerces the field value to an integer.
func AsInt(field string) TransformFunc {
	return func(_ context.Context, r Record) (any, error) {
		value, found := r.Field(field)
		if !found {
			return nil, errors.Errorf(`record has no field "%s"`, field)
		}
		if value == nil {
			return nil, nil
		}
		return cast.ToInt64E(value)
	}
}

// AsBool coerces the field value to a boolean, for example a 0/1 numeric flag.
func AsBool(field string) TransformFunc {
	return func(_ context.Context, r Record) (any, error) {
		value, found := r.Field(field)
		if !found {
			return nil, errors.Errorf(`record has no field "%s"`, field)
		}
		if value == nil {
			return nil, nil
		}
		return cast.ToBoolE(value)
	}
}

// Constant always produces the same value, for example a source system label.
func Constant(value any) TransformFunc {
	return func(_ context.Context, _ Record) (any, error) {
		return value, nil
	}
}
