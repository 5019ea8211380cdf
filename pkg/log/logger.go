package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog handler wrapped with ErrFmtHandler as the
// process-wide logger, for both slog.Default and GetLogger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{Key: "severity", Value: attr.Value}
			case slog.MessageKey:
				attr = slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &ops))
	slog.SetDefault(slog.New(handler))
	SetLogger(NewSlogLogger(handler))
}

// ToLogLevel maps a level name onto slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// SlogLogger adapts a slog.Handler to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger writing through handler.
func NewSlogLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

func (s *SlogLogger) Debug(msg string, fields ...any) { s.logger.Debug(msg, errFirst(fields)...) }
func (s *SlogLogger) Info(msg string, fields ...any)  { s.logger.Info(msg, errFirst(fields)...) }
func (s *SlogLogger) Warn(msg string, fields ...any)  { s.logger.Warn(msg, errFirst(fields)...) }
func (s *SlogLogger) Error(msg string, fields ...any) { s.logger.Error(msg, errFirst(fields)...) }

// With implements Logger.With.
func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// errFirst turns a leading error value into an ErrAttr so ErrFmtHandler can
// attach its stack trace.
func errFirst(fields []any) []any {
	if len(fields) == 0 {
		return fields
	}
	err, ok := fields[0].(error)
	if !ok {
		return fields
	}
	out := make([]any, 0, len(fields))
	out = append(out, ErrAttr(err))
	return append(out, fields[1:]...)
}
