package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"

	"github.com/etlkit/bigquery-exporter/internal/pkg/ctxattr"
)

func TestDebugLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := NewDebugLogger()
	logger.Debug(ctx, "Debug message.")
	logger.Info(ctx, "Info message.")
	logger.Warnf(ctx, "Warn %s.", "message")
	logger.Errorf(ctx, "Error %s.", "message")

	expected := `
DEBUG  Debug message.
INFO  Info message.
WARN  Warn message.
ERROR  Error message.
`
	assert.Equal(t, strings.TrimLeft(expected, "\n"), logger.AllMessages())
	assert.Equal(t, "INFO  Info message.\n", logger.InfoMessages())
	assert.Equal(t, "WARN  Warn message.\nERROR  Error message.\n", logger.WarnAndErrorMessages())

	logger.Truncate()
	assert.Equal(t, "", logger.AllMessages())
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := NewDebugLogger()

	logger.
		WithComponent("export").
		With(attribute.String("table", "dataset.events")).
		WithDuration(123 * time.Second).
		Info(ctx, "Done.")

	assert.Equal(t, "INFO  Done.  component=export  duration=2m3s  table=dataset.events\n", logger.AllMessages())
}

func TestLogger_ContextAttributes(t *testing.T) {
	t.Parallel()

	ctx := ctxattr.ContextWith(context.Background(), attribute.Int("batch", 2))
	logger := NewDebugLogger()
	logger.Info(ctx, "Processing.")

	assert.Equal(t, "INFO  Processing.  batch=2\n", logger.AllMessages())
}

func TestCliLogger_Levels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var stdout, stderr bytes.Buffer

	logger := NewCliLogger(&stdout, &stderr, LogFormatConsole, false)
	logger.Debug(ctx, "Debug message.")
	logger.Info(ctx, "Info message.")
	logger.Warn(ctx, "Warn message.")
	logger.Error(ctx, "Error message.")

	assert.Equal(t, "Info message.\n", stdout.String())
	assert.Equal(t, "Warn message.\nError message.\n", stderr.String())
}

func TestNewLogFormat(t *testing.T) {
	t.Parallel()

	format, err := NewLogFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, LogFormatJSON, format)

	format, err = NewLogFormat("invalid")
	assert.Error(t, err)
	assert.Equal(t, LogFormatConsole, format)
}
