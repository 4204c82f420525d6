// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// NewDebugLogger creates a logger which stores all messages in memory,
// so they can be asserted in tests.
func NewDebugLogger() DebugLogger {
	rec := &recorder{}
	return &debugLogger{Logger: loggerFromZapCore(&recorderCore{recorder: rec}), recorder: rec}
}

type debugLogger struct {
	Logger
	recorder *recorder
}

type record struct {
	level   zapcore.Level
	message string
}

type recorder struct {
	lock    sync.Mutex
	records []record
}

type recorderCore struct {
	recorder *recorder
	fields   []zapcore.Field
}

func (l *debugLogger) Truncate() {
	l.recorder.lock.Lock()
	defer l.recorder.lock.Unlock()
	l.recorder.records = nil
}

func (l *debugLogger) AllMessages() string {
	return l.messages(DebugLevel, ErrorLevel)
}

func (l *debugLogger) DebugMessages() string {
	return l.messages(DebugLevel, DebugLevel)
}

func (l *debugLogger) InfoMessages() string {
	return l.messages(InfoLevel, InfoLevel)
}

func (l *debugLogger) WarnMessages() string {
	return l.messages(WarnLevel, WarnLevel)
}

func (l *debugLogger) ErrorMessages() string {
	return l.messages(ErrorLevel, ErrorLevel)
}

func (l *debugLogger) WarnAndErrorMessages() string {
	return l.messages(WarnLevel, ErrorLevel)
}

func (l *debugLogger) messages(minLevel, maxLevel zapcore.Level) string {
	l.recorder.lock.Lock()
	defer l.recorder.lock.Unlock()

	var out strings.Builder
	for _, r := range l.recorder.records {
		if r.level >= minLevel && r.level <= maxLevel {
			out.WriteString(fmt.Sprintf("%s  %s\n", r.level.CapitalString(), r.message))
		}
	}
	return out.String()
}

func (c *recorderCore) Enabled(zapcore.Level) bool {
	return true
}

func (c *recorderCore) With(fields []zapcore.Field) zapcore.Core {
	return &recorderCore{recorder: c.recorder, fields: append(c.fields[:len(c.fields):len(c.fields)], fields...)}
}

func (c *recorderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(entry, c)
}

func (c *recorderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	message := entry.Message
	for _, f := range append(c.fields, fields...) {
		message += fmt.Sprintf("  %s=%s", f.Key, fieldValue(f))
	}

	c.recorder.lock.Lock()
	defer c.recorder.lock.Unlock()
	c.recorder.records = append(c.recorder.records, record{level: entry.Level, message: message})
	return nil
}

func (c *recorderCore) Sync() error {
	return nil
}

func fieldValue(f zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	return fmt.Sprintf("%v", enc.Fields[f.Key])
}
