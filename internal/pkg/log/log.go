// Package log provides a context-aware logger backed by the zap library.
//
// Attributes can be attached to the logger via With and to a context via the
// ctxattr package, both are included in emitted messages.
package log

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap/zapcore"
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger interface {
	contextLogger
	withAttributes
}

// DebugLogger records messages in memory, it is used in tests.
type DebugLogger interface {
	Logger
	Truncate()
	AllMessages() string
	DebugMessages() string
	InfoMessages() string
	WarnMessages() string
	ErrorMessages() string
	WarnAndErrorMessages() string
}

type contextLogger interface {
	// Debug logs the message in the debug level, attributes are read from the context.
	Debug(ctx context.Context, message string)
	// Info logs the message in the info level, attributes are read from the context.
	Info(ctx context.Context, message string)
	// Warn logs the message in the warning level, attributes are read from the context.
	Warn(ctx context.Context, message string)
	// Error logs the message in the error level, attributes are read from the context.
	Error(ctx context.Context, message string)

	Debugf(ctx context.Context, template string, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Errorf(ctx context.Context, template string, args ...any)

	Sync() error
}

type withAttributes interface {
	With(attrs ...attribute.KeyValue) Logger
	WithComponent(component string) Logger
	WithDuration(v time.Duration) Logger
}
