package export

import (
	"context"
)

// Record is one source record.
// The pipeline reads it only by field name, the concrete type is opaque.
type Record interface {
	// Field returns the value of the named field, found is false if the record has no such field.
	Field(name string) (value any, found bool)
}

// MapRecord is a Record backed by a map.
type MapRecord map[string]any

func (r MapRecord) Field(name string) (any, bool) {
	value, found := r[name]
	return value, found
}

// Queryset provides the ordered sequence of records to export.
//
// The order must be deterministic between the Count and Slice calls,
// otherwise batches may skip or repeat records. This is a responsibility
// of the implementation, it is not checked by the pipeline.
type Queryset interface {
	Count(ctx context.Context) (int, error)
	// Slice returns records in the half-open interval [start, end).
	Slice(ctx context.Context, start int, end int) ([]Record, error)
}

// SliceQueryset adapts in-memory records to the Queryset interface.
type SliceQueryset []Record

func (q SliceQueryset) Count(_ context.Context) (int, error) {
	return len(q), nil
}

func (q SliceQueryset) Slice(_ context.Context, start int, end int) ([]Record, error) {
	return q[start:end], nil
}
