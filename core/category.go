package core

// Category is the dot-joined namespace identifier a logger is bound to.
// It is typically the fully qualified name of a Go type, for example
// "github.com/acme/billing.Invoice". An empty Category means "absent";
// Resolver never produces one.
type Category string

// String returns the category as a plain string.
func (c Category) String() string {
	return string(c)
}
