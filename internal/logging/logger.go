// Package logging provides structured logging for multicheck.
// It wraps Go's log/slog package to provide JSON-formatted logs with
// persistent context attributes.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogFileName is the file created inside the log directory.
const LogFileName = "multicheck.log"

// Logger provides structured logging with persistent attributes.
// It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	out    *RotatingWriter // nil unless writing to a log file
	mu     sync.Mutex      // Protects out
	attrs  []slog.Attr     // Persistent attributes (component, ...)
}

// LoggerOption configures a file-backed Logger.
type LoggerOption func(*RotationConfig)

// WithRotation sets the size-based rotation policy of the log file.
func WithRotation(cfg RotationConfig) LoggerOption {
	return func(rc *RotationConfig) {
		*rc = cfg
	}
}

// NewLogger creates a Logger that writes JSON lines to {dir}/multicheck.log.
//
// The level parameter controls which messages are logged:
//   - DEBUG: All messages
//   - INFO: Info, Warn, and Error messages
//   - WARN: Warn and Error messages
//   - ERROR: Only Error messages
//
// The file rotates according to DefaultRotationConfig unless WithRotation
// says otherwise. If dir is empty, logs will be written to stderr.
func NewLogger(dir string, level string, opts ...LoggerOption) (*Logger, error) {
	if dir == "" {
		return NewLoggerTo(os.Stderr, level), nil
	}

	rotation := DefaultRotationConfig()
	for _, opt := range opts {
		opt(&rotation)
	}

	out, err := NewRotatingWriter(filepath.Join(dir, LogFileName), rotation)
	if err != nil {
		return nil, err
	}

	l := NewLoggerTo(out, level)
	l.out = out
	return l, nil
}

// NewLoggerTo creates a Logger writing JSON lines to w.
func NewLoggerTo(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Logger{
		logger: slog.New(handler),
		attrs:  make([]slog.Attr, 0),
	}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a child Logger tagging every entry with the component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.withAttr(slog.String("component", name))
}

// With returns a new Logger with arbitrary key-value attributes.
// Keys and values are provided as alternating arguments. A key that is
// already set is replaced.
func (l *Logger) With(args ...any) *Logger {
	child := l
	for i := 0; i < len(args)-1; i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		child = child.withAttr(slog.Any(key, args[i+1]))
	}
	return child
}

// withAttr returns a child Logger with attr, replacing any attr with the same key.
func (l *Logger) withAttr(attr slog.Attr) *Logger {
	newAttrs := make([]slog.Attr, 0, len(l.attrs)+1)
	for _, a := range l.attrs {
		if a.Key != attr.Key {
			newAttrs = append(newAttrs, a)
		}
	}
	newAttrs = append(newAttrs, attr)

	return &Logger{
		logger: l.logger,
		out:    l.out,
		attrs:  newAttrs,
	}
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	allArgs := make([]any, 0, len(l.attrs)*2+len(args))
	for _, attr := range l.attrs {
		allArgs = append(allArgs, attr.Key, attr.Value.Any())
	}
	allArgs = append(allArgs, args...)

	l.logger.Log(context.Background(), level, msg, allArgs...)
}

// Close flushes and closes the log file.
// For loggers not backed by a file this is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return nil
	}
	return l.out.Close()
}

// NopLogger returns a Logger that discards all log output.
func NopLogger() *Logger {
	return NewLoggerTo(io.Discard, LevelError)
}

// ParseLevel normalizes a user-provided level string.
// Returns LevelInfo if the level string is not recognized.
func ParseLevel(level string) string {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
