// Package logger is the structured logging facade used across habithub.
//
// Fields are slog attributes and the backend is a slog handler. Handlers
// and services log through Ctx(ctx) to pick up the request id set by the
// HTTP middleware.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "info"
	}
	return levelNames[l]
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config value to a Level. Unknown names mean info.
func ParseLevel(s string) Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "warning":
		return LevelWarn
	default:
		for i, name := range levelNames {
			if s == name {
				return Level(i)
			}
		}
		return LevelInfo
	}
}

// Field is one structured key/value pair
type Field = slog.Attr

func String(key, value string) Field                 { return slog.String(key, value) }
func Int(key string, value int) Field                { return slog.Int(key, value) }
func Int64(key string, value int64) Field            { return slog.Int64(key, value) }
func Float64(key string, value float64) Field        { return slog.Float64(key, value) }
func Bool(key string, value bool) Field              { return slog.Bool(key, value) }
func Duration(key string, value time.Duration) Field { return slog.Duration(key, value) }
func Time(key string, value time.Time) Field         { return slog.Time(key, value) }
func Any(key string, value any) Field                { return slog.Any(key, value) }

// Err logs err's message under "error"
func Err(err error) Field {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}

// Logger is the logging interface handed to handlers, services and commands
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that adds fields to every entry
	With(fields ...Field) Logger
	// WithContext returns a Logger carrying the context's request id
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config holds logging configuration
type Config struct {
	Level Level
	// Format is "json" (default) or "text"
	Format    string
	AddSource bool
	// Output defaults to stdout
	Output io.Writer
}

// DefaultConfig returns JSON output at info level
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: "json"}
}

var defaultLogger atomic.Pointer[Logger]

// SetDefault replaces the process-wide logger
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// Default returns the process-wide logger, creating a JSON one on first use
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return *l
	}
	l := NewSlogLogger(DefaultConfig())
	defaultLogger.CompareAndSwap(nil, &l)
	return *defaultLogger.Load()
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
func With(fields ...Field) Logger       { return Default().With(fields...) }
