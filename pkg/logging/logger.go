package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// NewJSONLogger creates a logger writing JSON lines to writer at the given level
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	lv := new(slog.LevelVar)
	lv.Set(level.slogLevel())

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: lv})
	return &JSONLogger{
		handler: slog.New(handler),
		level:   lv,
	}
}

// NewLogger creates a JSON logger on writer. An empty level string falls back
// to the LOG_LEVEL environment variable, then to INFO.
func NewLogger(writer io.Writer, level string) *JSONLogger {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	return NewJSONLogger(writer, ParseLevel(level))
}

func (l *JSONLogger) log(level Level, msg string, fields []Field) {
	if !l.handler.Enabled(context.Background(), level.slogLevel()) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	l.handler.LogAttrs(context.Background(), level.slogLevel(), msg, attrs...)
}

// Debug logs a debug-level message
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields)
}

// Info logs an info-level message
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields)
}

// Warn logs a warning-level message
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields)
}

// Error logs an error-level message
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields)
}

// With creates a child logger sharing the writer and level
func (l *JSONLogger) With(fields ...Field) Logger {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return &JSONLogger{
		handler: l.handler.With(args...),
		level:   l.level,
	}
}

// SetLevel changes the minimum level for this logger and all its children
func (l *JSONLogger) SetLevel(level Level) {
	l.level.Set(level.slogLevel())
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed returns the time since the timer started
func (t *TimedOperation) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs the operation at info level with its duration
func (t *TimedOperation) End(fields ...Field) time.Duration {
	elapsed := t.Elapsed()
	all := append(append([]Field{}, t.fields...), fields...)
	t.logger.Info(t.msg, append(all, Latency(elapsed))...)
	return elapsed
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) time.Duration {
	elapsed := t.Elapsed()
	all := append([]Field{}, t.fields...)
	t.logger.Error(t.msg, append(all, Latency(elapsed), Error(err))...)
	return elapsed
}
