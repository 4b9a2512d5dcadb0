package zapbackend

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Config holds configuration for the zap backend
type Config struct {
	// Base is the logger handles derive from (default: zap.NewProduction)
	Base *zap.Logger
}

// New creates a zap-backed factory
func New(cfg Config) *Factory {
	if cfg.Base == nil {
		cfg.Base = zap.Must(zap.NewProduction())
	}
	return &Factory{base: cfg.Base}
}

// Factory builds handles as named children of the base logger.
type Factory struct {
	base *zap.Logger
}

// Logger returns the handle for category, a child of the base logger
// named after it.
func (f *Factory) Logger(category core.Category) backend.Logger {
	return &Logger{zl: f.base.Named(string(category))}
}

// Logger adapts a named *zap.Logger. Placeholder rendering happens only
// after the level check passes.
type Logger struct {
	zl *zap.Logger
}

// Debug renders and emits msg when the debug level is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.zl.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	l.zl.Debug(core.Render(msg, args...))
}

// Info renders and emits msg when the info level is enabled.
func (l *Logger) Info(msg string, args ...any) {
	if !l.zl.Core().Enabled(zapcore.InfoLevel) {
		return
	}
	l.zl.Info(core.Render(msg, args...))
}

// DebugEnabled reports whether the underlying core emits debug.
func (l *Logger) DebugEnabled() bool {
	return l.zl.Core().Enabled(zapcore.DebugLevel)
}

// InfoEnabled reports whether the underlying core emits info.
func (l *Logger) InfoEnabled() bool {
	return l.zl.Core().Enabled(zapcore.InfoLevel)
}

// Zap exposes the named logger for calls outside the delegate surface.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}
