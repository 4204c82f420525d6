package export

import (
	"context"
	"maps"
	"slices"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/internal/pkg/validator"
)

const (
	// DefaultBatchSize is used when Definition.BatchSize is not set.
	DefaultBatchSize = 1000
	// NoBatch disables batching, the whole queryset is inserted in one call.
	NoBatch = -1
	// DefaultPullDateField is the destination column for the pull date, if tracking is enabled.
	DefaultPullDateField = "pull_date"
)

// TransformFunc produces the value of one field from the source record.
// A transform registered for a field name overrides direct field access.
type TransformFunc func(ctx context.Context, r Record) (any, error)

// Definition describes one export.
// It is validated by New and immutable afterwards.
type Definition struct {
	// Source provides the records to export, see also WithQueryset.
	Source Queryset `json:"-" validate:"required"`
	// TableID is the fully qualified identifier of the destination table.
	TableID string `json:"tableId" validate:"required"`
	// Fields are the exported field names, in the destination row order.
	Fields []string `json:"fields" validate:"required,min=1,dive,required"`
	// BatchSize limits how many rows are inserted in one call, see DefaultBatchSize and NoBatch.
	BatchSize int `json:"batchSize" validate:"gte=-1"`
	// ReplaceNullsWithEmpty replaces a null resolved value with an empty string.
	ReplaceNullsWithEmpty bool `json:"replaceNullsWithEmpty"`
	// IncludePullDate appends the pull date to every exported row.
	IncludePullDate bool `json:"includePullDate"`
	// PullDateField is the destination column for the pull date.
	PullDateField string `json:"pullDateField"`
	// Transforms are custom per-field transform functions, keyed by a declared field name.
	Transforms map[string]TransformFunc `json:"-"`
}

func (d Definition) withDefaults() Definition {
	if d.BatchSize == 0 {
		d.BatchSize = DefaultBatchSize
	}
	if d.PullDateField == "" {
		d.PullDateField = DefaultPullDateField
	}
	return d
}

func (d Definition) validate(ctx context.Context) error {
	errs := errors.NewMultiError()
	if err := validator.New().Validate(ctx, d); err != nil {
		errs.Append(err)
	}

	// Each transform must be registered for a declared field
	for _, name := range slices.Sorted(maps.Keys(d.Transforms)) {
		if !slices.Contains(d.Fields, name) {
			errs.Append(errors.Errorf(`transform is registered for field "%s", but the field is not declared`, name))
		}
	}

	// The pull date field is appended automatically, it cannot be declared too
	if d.IncludePullDate && slices.Contains(d.Fields, d.PullDateField) {
		errs.Append(errors.Errorf(`pull date field "%s" cannot be included in the declared fields`, d.PullDateField))
	}

	return errs.ErrorOrNil()
}
