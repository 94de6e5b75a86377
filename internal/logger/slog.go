package logger

import (
	"context"
	"log/slog"
	"os"
)

type slogLogger struct {
	handler slog.Handler
	level   Level
}

// NewSlogLogger builds a Logger writing through a slog JSON or text handler
func NewSlogLogger(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.slog(), AddSource: cfg.AddSource}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}
	return &slogLogger{handler: h, level: cfg.Level}
}

func (l *slogLogger) log(level Level, msg string, fields []Field) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level.slog()) {
		return
	}
	slog.New(l.handler).LogAttrs(ctx, level.slog(), msg, fields...)
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *slogLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &slogLogger{handler: l.handler.WithAttrs(fields), level: l.level}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.With(String("request_id", id))
	}
	return l
}

func (l *slogLogger) Level() Level {
	return l.level
}
