package logrusbackend

import (
	"github.com/sirupsen/logrus"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Config holds configuration for the logrus backend
type Config struct {
	// Base is the logger handles derive from (default: logrus.StandardLogger)
	Base *logrus.Logger
}

// New creates a logrus-backed factory
func New(cfg Config) *Factory {
	if cfg.Base == nil {
		cfg.Base = logrus.StandardLogger()
	}
	return &Factory{base: cfg.Base}
}

// Factory builds handles carrying the category as a "category" field.
type Factory struct {
	base *logrus.Logger
}

// Logger returns the handle for category.
func (f *Factory) Logger(category core.Category) backend.Logger {
	return &Logger{entry: f.base.WithField("category", string(category))}
}

// Logger adapts a *logrus.Entry. Placeholder rendering happens only
// after the level check passes.
type Logger struct {
	entry *logrus.Entry
}

// Debug renders and emits msg when the debug level is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.entry.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	l.entry.Debug(core.Render(msg, args...))
}

// Info renders and emits msg when the info level is enabled.
func (l *Logger) Info(msg string, args ...any) {
	if !l.entry.Logger.IsLevelEnabled(logrus.InfoLevel) {
		return
	}
	l.entry.Info(core.Render(msg, args...))
}

// DebugEnabled reports whether the underlying logger emits debug.
func (l *Logger) DebugEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}

// InfoEnabled reports whether the underlying logger emits info.
func (l *Logger) InfoEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.InfoLevel)
}

// Logrus exposes the decorated entry for calls outside the delegate
// surface.
func (l *Logger) Logrus() *logrus.Entry {
	return l.entry
}
