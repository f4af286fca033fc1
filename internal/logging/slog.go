package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Supported output formats for New.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatTint = "tint"
)

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// New builds a slog-backed Logger writing to w. Format selects the handler:
// JSON for production, plain text, or tint for colored console output.
// Unknown formats fall back to JSON.
func New(w io.Writer, format, level string) *SlogLogger {
	lvl := ParseLevel(level)

	var h slog.Handler
	switch strings.ToLower(format) {
	case FormatText:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	case FormatTint:
		h = tint.NewHandler(w, &tint.Options{Level: lvl, TimeFormat: time.Kitchen})
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	}

	return NewSlogLogger(slog.New(h))
}

// ParseLevel maps a level name to slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// withRequestID appends the request id found in ctx, if any.
func withRequestID(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	if id := RequestID(ctx); id != "" {
		return append(args, "request_id", id)
	}
	return args
}
