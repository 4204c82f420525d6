package export

import (
	"context"
	"time"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

// transformRecord converts one source record to a destination row.
// The row keys follow the declared field order,
// the pull date is appended as the last key, if tracking is enabled.
func (e *Exporter) transformRecord(ctx context.Context, r Record, pullDate time.Time) (*orderedmap.OrderedMap, error) {
	row := orderedmap.New()
	for _, field := range e.def.Fields {
		value, err := e.resolveField(ctx, field, r)
		if err != nil {
			return nil, errors.PrefixErrorf(err, `cannot resolve field "%s"`, field)
		}
		row.Set(field, value)
	}

	if e.def.IncludePullDate {
		row.Set(e.def.PullDateField, FormatTime(pullDate))
	}

	return row, nil
}

// resolveField resolves a declared field from the record.
// A registered transform takes precedence over direct field access.
// Null replacement happens after the transform resolution, not before.
func (e *Exporter) resolveField(ctx context.Context, field string, r Record) (any, error) {
	var value any
	if fn, found := e.def.Transforms[field]; found {
		v, err := fn(ctx, r)
		if err != nil {
			return nil, err
		}
		value = v
	} else if v, found := r.Field(field); found {
		value = v
	} else {
		return nil, errors.Errorf(`record has no field "%s" and no transform is registered for it`, field)
	}

	value = normalizeValue(value)
	if value == nil && e.def.ReplaceNullsWithEmpty {
		value = ""
	}

	return value, nil
}
