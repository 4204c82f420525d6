// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/etlkit/bigquery-exporter/internal/pkg/ctxattr"
)

// zapLogger is the default implementation of the Logger interface.
type zapLogger struct {
	core      zapcore.Core
	component string
	duration  time.Duration
	fields    []zap.Field
}

func loggerFromZapCore(core zapcore.Core) Logger {
	return &zapLogger{core: core}
}

func (l *zapLogger) Debug(ctx context.Context, message string) {
	l.log(ctx, DebugLevel, message)
}

func (l *zapLogger) Info(ctx context.Context, message string) {
	l.log(ctx, InfoLevel, message)
}

func (l *zapLogger) Warn(ctx context.Context, message string) {
	l.log(ctx, WarnLevel, message)
}

func (l *zapLogger) Error(ctx context.Context, message string) {
	l.log(ctx, ErrorLevel, message)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.log(ctx, DebugLevel, fmt.Sprintf(template, args...))
}

func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.log(ctx, InfoLevel, fmt.Sprintf(template, args...))
}

func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.log(ctx, WarnLevel, fmt.Sprintf(template, args...))
}

func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.log(ctx, ErrorLevel, fmt.Sprintf(template, args...))
}

func (l *zapLogger) Sync() error {
	return l.core.Sync()
}

func (l *zapLogger) With(attrs ...attribute.KeyValue) Logger {
	if len(attrs) == 0 {
		return l
	}
	clone := *l
	clone.fields = append(cloneFields(l.fields), attrsToFields(attrs)...)
	return &clone
}

func (l *zapLogger) WithComponent(component string) Logger {
	clone := *l
	if l.component != "" {
		component = l.component + "." + component
	}
	clone.component = component
	return &clone
}

func (l *zapLogger) WithDuration(v time.Duration) Logger {
	clone := *l
	clone.duration = v
	return &clone
}

func (l *zapLogger) log(ctx context.Context, level zapcore.Level, message string) {
	entry := zapcore.Entry{Level: level, Time: time.Now(), Message: message}
	ce := l.core.Check(entry, nil)
	if ce == nil {
		return
	}

	var fields []zap.Field
	if l.component != "" {
		fields = append(fields, zap.String("component", l.component))
	}
	if l.duration > 0 {
		fields = append(fields, zap.String("duration", l.duration.String()))
	}
	fields = append(fields, l.fields...)
	if set := ctxattr.Attributes(ctx); set.Len() > 0 {
		fields = append(fields, attrsToFields(set.ToSlice())...)
	}

	ce.Write(fields...)
}

func cloneFields(fields []zap.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	copy(out, fields)
	return out
}

func attrsToFields(attrs []attribute.KeyValue) []zap.Field {
	fields := make([]zap.Field, 0, len(attrs))
	for _, attr := range attrs {
		key := string(attr.Key)
		switch attr.Value.Type() {
		case attribute.BOOL:
			fields = append(fields, zap.Bool(key, attr.Value.AsBool()))
		case attribute.INT64:
			fields = append(fields, zap.Int64(key, attr.Value.AsInt64()))
		case attribute.FLOAT64:
			fields = append(fields, zap.Float64(key, attr.Value.AsFloat64()))
		case attribute.STRING:
			fields = append(fields, zap.String(key, attr.Value.AsString()))
		default:
			fields = append(fields, zap.String(key, attr.Value.Emit()))
		}
	}
	return fields
}
