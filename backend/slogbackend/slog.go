package slogbackend

import (
	"context"
	"log/slog"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Config holds configuration for the slog backend
type Config struct {
	// Base is the logger handles derive from, captured once at New;
	// a later slog.SetDefault does not reach factories already built
	// (default: slog.Default)
	Base *slog.Logger
}

// New creates an slog-backed factory
func New(cfg Config) *Factory {
	if cfg.Base == nil {
		cfg.Base = slog.Default()
	}
	return &Factory{base: cfg.Base}
}

// Factory builds handles carrying the category as a "logger" attribute.
type Factory struct {
	base *slog.Logger
}

// Logger returns the handle for category.
func (f *Factory) Logger(category core.Category) backend.Logger {
	return &Logger{sl: f.base.With("logger", string(category))}
}

// Logger adapts a *slog.Logger. Placeholder rendering happens only after
// the level check passes.
type Logger struct {
	sl *slog.Logger
}

// Debug renders and emits msg when the debug level is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.sl.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.sl.Debug(core.Render(msg, args...))
}

// Info renders and emits msg when the info level is enabled.
func (l *Logger) Info(msg string, args ...any) {
	if !l.sl.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	l.sl.Info(core.Render(msg, args...))
}

// DebugEnabled reports whether the underlying handler emits debug.
func (l *Logger) DebugEnabled() bool {
	return l.sl.Enabled(context.Background(), slog.LevelDebug)
}

// InfoEnabled reports whether the underlying handler emits info.
func (l *Logger) InfoEnabled() bool {
	return l.sl.Enabled(context.Background(), slog.LevelInfo)
}

// Slog exposes the decorated logger for calls outside the delegate surface.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}
