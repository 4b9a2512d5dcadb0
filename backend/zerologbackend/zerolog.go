package zerologbackend

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Config holds configuration for the zerolog backend
type Config struct {
	// Base is the logger handles derive from (default: a timestamped
	// logger writing to os.Stderr)
	Base *zerolog.Logger
}

// New creates a zerolog-backed factory
func New(cfg Config) *Factory {
	if cfg.Base == nil {
		base := zerolog.New(os.Stderr).With().Timestamp().Logger()
		cfg.Base = &base
	}
	return &Factory{base: *cfg.Base}
}

// Factory builds handles carrying the category as a "category" field.
type Factory struct {
	base zerolog.Logger
}

// Logger returns the handle for category.
func (f *Factory) Logger(category core.Category) backend.Logger {
	return &Logger{zl: f.base.With().Str("category", string(category)).Logger()}
}

// Logger adapts a zerolog.Logger. Placeholder rendering happens only
// after the level check passes. The check honors both the logger's own
// level and zerolog's global level, matching what zerolog itself does
// before writing an event.
type Logger struct {
	zl zerolog.Logger
}

// Debug renders and emits msg when the debug level is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.enabled(zerolog.DebugLevel) {
		return
	}
	l.zl.Debug().Msg(core.Render(msg, args...))
}

// Info renders and emits msg when the info level is enabled.
func (l *Logger) Info(msg string, args ...any) {
	if !l.enabled(zerolog.InfoLevel) {
		return
	}
	l.zl.Info().Msg(core.Render(msg, args...))
}

// DebugEnabled reports whether a debug event would be written.
func (l *Logger) DebugEnabled() bool {
	return l.enabled(zerolog.DebugLevel)
}

// InfoEnabled reports whether an info event would be written.
func (l *Logger) InfoEnabled() bool {
	return l.enabled(zerolog.InfoLevel)
}

// Zerolog exposes the decorated logger for calls outside the delegate
// surface.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

func (l *Logger) enabled(lvl zerolog.Level) bool {
	return lvl >= l.zl.GetLevel() && lvl >= zerolog.GlobalLevel()
}
