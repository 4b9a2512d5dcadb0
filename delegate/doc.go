// Package delegate implements logging as a small owned object rather
// than an inherited capability. A service holds a *Delegate; the
// delegate derives its category from the owner's type name, decorates
// it with an optional prefix and postfix, obtains one handle from a
// backend factory and forwards debug and info calls to that handle for
// the rest of its life.
//
// Construction is the only moment anything is decided. New derives the
// category from an owner value, For from a type parameter, ForType
// from a reflect.Type. Whatever the path, the resolved category is
// never empty: an owner that yields no usable name falls back to
// Config.Fallback's type, and absent that to the Delegate type itself.
// A factory that returns a nil handle panics, since an owner whose
// logging cannot be built should itself fail to build.
//
// After construction a delegate is immutable and safe for concurrent
// use. Enabled-state is never cached: DebugEnabled and InfoEnabled ask
// the backend every time, so runtime reconfiguration of the backend is
// visible immediately.
//
// The zero Config is usable. It resolves the handle through the
// package default factory, which starts as an slog backend and can be
// replaced with SetDefault.
package delegate
