package backend

import "github.com/dlog-io/dlog/core"

// Logger is the handle a backend binds to a single category. It carries
// the delegate capability set: level-tagged emission with positional "{}"
// placeholders and the two matching enabled-checks.
//
// Implementations must perform the enabled-check before rendering the
// message, so arguments are never stringified for a filtered-out call,
// and must be safe for concurrent use once constructed.
type Logger interface {
	// Debug emits msg at debug level with "{}" tokens substituted by args.
	Debug(msg string, args ...any)

	// Info emits msg at info level with "{}" tokens substituted by args.
	Info(msg string, args ...any)

	// DebugEnabled reports whether debug emission is currently enabled.
	DebugEnabled() bool

	// InfoEnabled reports whether info emission is currently enabled.
	InfoEnabled() bool
}

// Factory obtains the Logger bound to a category.
type Factory interface {
	// Logger returns the handle bound to category. It must not return
	// nil; a nil handle is treated as a fatal construction failure by
	// the delegate layer.
	Logger(category core.Category) Logger
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(category core.Category) Logger

// Logger calls f(category).
func (f FactoryFunc) Logger(category core.Category) Logger {
	return f(category)
}
