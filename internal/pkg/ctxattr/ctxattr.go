// Package ctxattr provides propagation of telemetry attributes via a context.
// The attributes are included in log messages emitted with the context.
package ctxattr

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

type contextKey struct{}

var emptySet = attribute.NewSet() // nolint: gochecknoglobals

// ContextWith returns a context with the attributes added.
// An attribute with an already present key replaces the old value.
func ContextWith(ctx context.Context, attrs ...attribute.KeyValue) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	old := Attributes(ctx)
	merged := make([]attribute.KeyValue, 0, old.Len()+len(attrs))
	merged = append(merged, old.ToSlice()...)
	merged = append(merged, attrs...)

	// NewSet deduplicates keys, the last value wins
	set := attribute.NewSet(merged...)
	return context.WithValue(ctx, contextKey{}, &set)
}

// Attributes returns all attributes stored in the context.
func Attributes(ctx context.Context) *attribute.Set {
	if set, ok := ctx.Value(contextKey{}).(*attribute.Set); ok {
		return set
	}
	return &emptySet
}
