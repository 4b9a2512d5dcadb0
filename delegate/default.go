package delegate

import (
	"sync"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/backend/slogbackend"
)

var (
	defaultFactory backend.Factory
	defaultMu      sync.RWMutex
)

func init() {
	// Initialize default factory with the slog backend
	defaultFactory = slogbackend.New(slogbackend.Config{})
}

// Default returns the factory used when Config.Factory is nil. The
// initial factory is an slog backend bound to the process slog default
// as it was at package init; use SetDefault to route elsewhere.
func Default() backend.Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefault sets the factory used when Config.Factory is nil. Passing
// nil panics; delegates constructed later must always find a factory.
func SetDefault(f backend.Factory) {
	if f == nil {
		panic("dlog: nil default factory")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}
