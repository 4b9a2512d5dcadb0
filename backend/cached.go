package backend

import (
	"sync"

	"github.com/dlog-io/dlog/core"
)

// Cached wraps a factory so that repeated resolution of one category
// shares a single handle. Backends whose factories build a fresh handle
// per call gain the usual singleton-per-category convention this way.
func Cached(inner Factory) Factory {
	return &cachedFactory{inner: inner}
}

type cachedFactory struct {
	inner   Factory
	loggers sync.Map // map[core.Category]Logger
}

func (f *cachedFactory) Logger(category core.Category) Logger {
	// Fast path: handle already built
	if v, ok := f.loggers.Load(category); ok {
		return v.(Logger)
	}

	l := f.inner.Logger(category)
	actual, loaded := f.loggers.LoadOrStore(category, l)
	if loaded {
		return actual.(Logger)
	}
	return l
}
