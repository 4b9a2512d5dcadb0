// Package core defines the shared vocabulary of the dlog library.
//
// It provides the Category type naming the namespace a logger is bound
// to, the TypeName function and Resolver type that derive categories from
// Go type identities, and the Render function implementing the positional
// "{}" placeholder contract every backend shares.
//
// A Category is the fully qualified name of a Go type: the package path
// joined to the type name, optionally decorated with a prefix and a
// postfix by a Resolver. Resolution is total: a nil or unnamed type
// falls back to a deterministic default instead of yielding an empty
// category, so a logger can always be constructed.
//
// Render pairs "{}" tokens with trailing arguments positionally and
// stringifies them with fmt's %v verb. It formats into a pooled
// bytes.Buffer; buffers larger than 64 KiB are not returned to the pool
// to prevent a single large message from permanently inflating memory
// usage. Backends call Render only after their enabled-check passes,
// which keeps argument stringification lazy per level and per sink.
package core
