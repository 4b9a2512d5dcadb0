// Package backend defines the factory capability set that turns a
// category into a usable logger handle, plus backend-agnostic
// combinators over it.
//
// A Factory binds a core.Category to a Logger. The concrete subpackages
// (zapbackend, slogbackend, zerologbackend, logrusbackend,
// memorybackend) adapt real logging libraries to this interface; the
// package itself carries the combinators:
//
//   - Multi fans a single category out to several factories.
//   - Cached memoizes handles so one category shares one handle.
//   - Nop discards everything.
//
// Handles carry exactly the delegate capability set: Debug and Info
// emission with positional "{}" placeholders, and the two matching
// enabled-checks. Wider level ladders, formatting, and sinks remain the
// wrapped libraries' business.
package backend
