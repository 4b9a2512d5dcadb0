package delegate

import (
	"fmt"
	"reflect"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Config holds construction-time configuration for a delegate
type Config struct {
	// Prefix is prepended to the derived category, joined with a dot
	// unless it already ends in one (default: none)
	Prefix string
	// Postfix is appended verbatim to the derived category (default: none)
	Postfix string
	// Factory builds the backend handle (default: the package default
	// factory, see Default)
	Factory backend.Factory
	// Fallback supplies the identity the category derives from when the
	// owner yields none (default: the Delegate type itself)
	Fallback any
}

// Delegate owns a single backend handle bound to a category derived
// from its owner's identity. The handle is set at construction and
// never replaced, so a delegate needs no locking: concurrent use after
// construction only reads immutable state.
//
// A Delegate itself satisfies backend.Logger, so delegates compose with
// Multi, Cached and custom factories.
type Delegate struct {
	log      backend.Logger
	category core.Category
}

// New creates a delegate for owner, deriving the category from owner's
// dynamic type. A nil owner resolves to the fallback category.
func New(owner any, cfg Config) *Delegate {
	return newDelegate(reflect.TypeOf(owner), cfg)
}

// For creates a delegate whose category derives from the type T. Meant
// for package-wide delegates, where no owner value exists yet.
func For[T any](cfg Config) *Delegate {
	return newDelegate(reflect.TypeOf((*T)(nil)).Elem(), cfg)
}

// ForType creates a delegate whose category derives from t. A nil t
// resolves to the fallback category.
func ForType(t reflect.Type, cfg Config) *Delegate {
	return newDelegate(t, cfg)
}

func newDelegate(t reflect.Type, cfg Config) *Delegate {
	r := core.Resolver{
		Prefix:   cfg.Prefix,
		Postfix:  cfg.Postfix,
		Fallback: fallbackType(cfg.Fallback),
	}
	category := r.Resolve(t)

	factory := cfg.Factory
	if factory == nil {
		factory = Default()
	}
	log := factory.Logger(category)
	if log == nil {
		panic(fmt.Sprintf("dlog: backend factory returned nil handle for category %q", category))
	}
	return &Delegate{log: log, category: category}
}

func fallbackType(fallback any) reflect.Type {
	if fallback == nil {
		return reflect.TypeOf((*Delegate)(nil)).Elem()
	}
	return reflect.TypeOf(fallback)
}

// Debug logs a debug message through the delegate's handle
func (d *Delegate) Debug(msg string, args ...any) {
	d.log.Debug(msg, args...)
}

// Info logs an info message through the delegate's handle
func (d *Delegate) Info(msg string, args ...any) {
	d.log.Info(msg, args...)
}

// DebugEnabled reports whether the handle currently emits debug. The
// answer is read from the backend on every call, never cached.
func (d *Delegate) DebugEnabled() bool {
	return d.log.DebugEnabled()
}

// InfoEnabled reports whether the handle currently emits info
func (d *Delegate) InfoEnabled() bool {
	return d.log.InfoEnabled()
}

// Handle returns the stored backend handle, for callers that need the
// backend's surface beyond debug and info.
func (d *Delegate) Handle() backend.Logger {
	return d.log
}

// Category returns the category the delegate resolved at construction
func (d *Delegate) Category() core.Category {
	return d.category
}
