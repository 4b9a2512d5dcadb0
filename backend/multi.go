package backend

import "github.com/dlog-io/dlog/core"

// Multi returns a factory that fans every category out to all child
// factories. The handle it builds forwards each call to every child
// handle, and an enabled-check passes when any child reports the level
// enabled. Children keep their own gates, so a message is rendered once
// per child that actually emits it and not at all for children that
// will not.
func Multi(factories ...Factory) Factory {
	return multiFactory(factories)
}

type multiFactory []Factory

func (m multiFactory) Logger(category core.Category) Logger {
	handles := make([]Logger, len(m))
	for i, f := range m {
		handles[i] = f.Logger(category)
	}
	return multiLogger(handles)
}

type multiLogger []Logger

func (m multiLogger) Debug(msg string, args ...any) {
	for _, l := range m {
		l.Debug(msg, args...)
	}
}

func (m multiLogger) Info(msg string, args ...any) {
	for _, l := range m {
		l.Info(msg, args...)
	}
}

func (m multiLogger) DebugEnabled() bool {
	for _, l := range m {
		if l.DebugEnabled() {
			return true
		}
	}
	return false
}

func (m multiLogger) InfoEnabled() bool {
	for _, l := range m {
		if l.InfoEnabled() {
			return true
		}
	}
	return false
}
