package backend

import "github.com/dlog-io/dlog/core"

// Nop returns a factory whose handles report both levels disabled and
// discard everything. Useful for silencing delegates, e.g. in tests.
func Nop() Factory {
	return FactoryFunc(func(core.Category) Logger {
		return nopLogger{}
	})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) DebugEnabled() bool   { return false }
func (nopLogger) InfoEnabled() bool    { return false }
