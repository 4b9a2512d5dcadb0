package memorybackend

import (
	"sync"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/core"
)

// Entry is one recorded log statement.
type Entry struct {
	Category core.Category
	Level    core.Level
	// Message is the rendered text, placeholders already substituted.
	Message string
}

// Factory hands out recording handles. All handles share the factory's
// entry log and enabled flags, so a test can toggle a level and observe
// the change through handles created earlier.
type Factory struct {
	mu      sync.Mutex
	debug   bool
	info    bool
	entries []Entry
}

// New creates a recording factory with both levels enabled.
func New() *Factory {
	return &Factory{debug: true, info: true}
}

// Logger returns the recording handle bound to category.
func (f *Factory) Logger(category core.Category) backend.Logger {
	return &Logger{f: f, category: category}
}

// SetDebug toggles debug emission for every handle of this factory.
func (f *Factory) SetDebug(enabled bool) {
	f.mu.Lock()
	f.debug = enabled
	f.mu.Unlock()
}

// SetInfo toggles info emission for every handle of this factory.
func (f *Factory) SetInfo(enabled bool) {
	f.mu.Lock()
	f.info = enabled
	f.mu.Unlock()
}

// Entries returns a snapshot of everything recorded so far, in emission
// order.
func (f *Factory) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Reset discards all recorded entries. Enabled flags are left untouched.
func (f *Factory) Reset() {
	f.mu.Lock()
	f.entries = f.entries[:0]
	f.mu.Unlock()
}

func (f *Factory) record(e Entry) {
	f.mu.Lock()
	f.entries = append(f.entries, e)
	f.mu.Unlock()
}

func (f *Factory) debugEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.debug
}

func (f *Factory) infoEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info
}

// Logger is the recording handle for one category.
type Logger struct {
	f        *Factory
	category core.Category
}

// Debug records msg at debug level when debug emission is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.f.debugEnabled() {
		return
	}
	l.f.record(Entry{Category: l.category, Level: core.DebugLevel, Message: core.Render(msg, args...)})
}

// Info records msg at info level when info emission is enabled.
func (l *Logger) Info(msg string, args ...any) {
	if !l.f.infoEnabled() {
		return
	}
	l.f.record(Entry{Category: l.category, Level: core.InfoLevel, Message: core.Render(msg, args...)})
}

// DebugEnabled reports the factory's debug flag at call time.
func (l *Logger) DebugEnabled() bool {
	return l.f.debugEnabled()
}

// InfoEnabled reports the factory's info flag at call time.
func (l *Logger) InfoEnabled() bool {
	return l.f.infoEnabled()
}
