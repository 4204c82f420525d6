// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates a logger for command line use.
// Info messages go to stdout, warnings and errors to stderr,
// debug messages are included only in the verbose mode.
func NewCliLogger(stdout io.Writer, stderr io.Writer, format LogFormat, verbose bool) Logger {
	cores := []zapcore.Core{
		stdoutCore(stdout, format, verbose),
		stderrCore(stderr, format),
	}
	return loggerFromZapCore(zapcore.NewTee(cores...))
}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() Logger {
	return loggerFromZapCore(zapcore.NewNopCore())
}

func stdoutCore(stdout io.Writer, format LogFormat, verbose bool) zapcore.Core {
	minLevel := InfoLevel
	if verbose {
		minLevel = DebugLevel
	}
	levels := zapcore.LevelEnabler(levelRange{min: minLevel, max: InfoLevel})
	return zapcore.NewCore(encoder(format), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, format LogFormat) zapcore.Core {
	levels := zapcore.LevelEnabler(levelRange{min: WarnLevel, max: ErrorLevel})
	return zapcore.NewCore(encoder(format), zapcore.AddSync(stderr), levels)
}

func encoder(format LogFormat) zapcore.Encoder {
	if format == LogFormatJSON {
		return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			MessageKey:  "message",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		})
	}

	// Console output contains only the message and fields
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "message",
	})
}

type levelRange struct {
	min zapcore.Level
	max zapcore.Level
}

func (r levelRange) Enabled(level zapcore.Level) bool {
	return level >= r.min && level <= r.max
}
