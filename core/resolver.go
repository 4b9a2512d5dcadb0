package core

import (
	"reflect"
	"strings"
)

// TypeName returns the fully qualified name of a type: its package path
// joined to the type name, e.g. "github.com/acme/billing.Invoice".
// Pointer types are unwrapped, so *Invoice and Invoice name the same
// category. Predeclared types have no package path and resolve to their
// bare name ("int"). Unnamed types (anonymous structs, slices, funcs)
// have no name at all and resolve to the empty Category.
func TypeName(t reflect.Type) Category {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return ""
	}
	if path := t.PkgPath(); path != "" {
		return Category(path + "." + name)
	}
	return Category(name)
}

// Resolver computes the Category for a type identity, optionally decorated
// with a prefix and a postfix. The zero value resolves plain fully
// qualified type names. Resolution is pure string computation with no side
// effects; a Resolver may be copied and shared freely.
type Resolver struct {
	// Prefix is prepended to the type name, joined with "." unless it
	// already ends in one. Empty means no prefix.
	Prefix string
	// Postfix is appended verbatim to the type name. Empty means no postfix.
	Postfix string
	// Fallback is the type the category is derived from when the given
	// type yields none. Nil means the Resolver type itself.
	Fallback reflect.Type
}

// Resolve returns the decorated category for t. When t is nil or names no
// category (an unnamed type), the category is recomputed from the fallback
// type instead, decorated the same way. The result is never empty: a
// fallback that itself names no category is replaced by the Resolver's own
// type, which always has one.
func (r Resolver) Resolve(t reflect.Type) Category {
	if c := r.categoryFromType(t); c != "" {
		return c
	}
	if c := r.categoryFromType(r.Fallback); c != "" {
		return c
	}
	return r.categoryFromType(reflect.TypeOf(r))
}

// categoryFromType decorates the type's name with the configured prefix
// and postfix. An empty name stays empty; decoration never invents a
// category on its own.
func (r Resolver) categoryFromType(t reflect.Type) Category {
	name := TypeName(t)
	if name == "" {
		return ""
	}
	var b strings.Builder
	if r.Prefix != "" {
		b.WriteString(r.Prefix)
		if !strings.HasSuffix(r.Prefix, ".") {
			b.WriteByte('.')
		}
	}
	b.WriteString(string(name))
	b.WriteString(r.Postfix)
	return Category(b.String())
}
