package backend_test

import (
	"strconv"
	"testing"

	"github.com/dlog-io/dlog/backend"
	"github.com/dlog-io/dlog/backend/memorybackend"
	"github.com/dlog-io/dlog/core"
)

func TestFactoryFunc(t *testing.T) {
	var got core.Category
	f := backend.FactoryFunc(func(category core.Category) backend.Logger {
		got = category
		return memorybackend.New().Logger(category)
	})

	f.Logger("payments")
	if got != "payments" {
		t.Errorf("category = %q, want %q", got, "payments")
	}
}

func TestMulti_FansOut(t *testing.T) {
	first := memorybackend.New()
	second := memorybackend.New()
	log := backend.Multi(first, second).Logger("orders")

	log.Info("order {} placed", 41)
	log.Debug("details follow")

	for name, f := range map[string]*memorybackend.Factory{"first": first, "second": second} {
		entries := f.Entries()
		if len(entries) != 2 {
			t.Fatalf("%s: len(entries) = %d, want 2", name, len(entries))
		}
		if entries[0].Category != "orders" {
			t.Errorf("%s: category = %q, want %q", name, entries[0].Category, "orders")
		}
		if entries[0].Message != "order 41 placed" {
			t.Errorf("%s: message = %q, want %q", name, entries[0].Message, "order 41 placed")
		}
	}
}

func TestMulti_EnabledIsAnyChild(t *testing.T) {
	tests := []struct {
		name          string
		first, second bool
		want          bool
	}{
		{"both enabled", true, true, true},
		{"first only", true, false, true},
		{"second only", false, true, true},
		{"none", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := memorybackend.New()
			first.SetDebug(tt.first)
			first.SetInfo(tt.first)
			second := memorybackend.New()
			second.SetDebug(tt.second)
			second.SetInfo(tt.second)

			log := backend.Multi(first, second).Logger("orders")
			if got := log.DebugEnabled(); got != tt.want {
				t.Errorf("DebugEnabled() = %v, want %v", got, tt.want)
			}
			if got := log.InfoEnabled(); got != tt.want {
				t.Errorf("InfoEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulti_ChildrenKeepOwnGates(t *testing.T) {
	noisy := memorybackend.New()
	quiet := memorybackend.New()
	quiet.SetDebug(false)

	log := backend.Multi(noisy, quiet).Logger("orders")

	stamp := &stampStringer{}
	log.Debug("cache warm in {}ms, {}", 12, stamp)

	if got := len(noisy.Entries()); got != 1 {
		t.Errorf("noisy entries = %d, want 1", got)
	}
	if got := len(quiet.Entries()); got != 0 {
		t.Errorf("quiet entries = %d, want 0", got)
	}
	if stamp.calls != 1 {
		t.Errorf("Stringer called %d times, want 1 (once per emitting child)", stamp.calls)
	}
}

func TestMulti_Empty(t *testing.T) {
	log := backend.Multi().Logger("orders")

	log.Info("dropped")
	if log.DebugEnabled() || log.InfoEnabled() {
		t.Errorf("enabled = %v, %v, want false, false", log.DebugEnabled(), log.InfoEnabled())
	}
}

func TestCached_SharesHandles(t *testing.T) {
	constructions := 0
	inner := backend.FactoryFunc(func(category core.Category) backend.Logger {
		constructions++
		return memorybackend.New().Logger(category)
	})
	cached := backend.Cached(inner)

	a := cached.Logger("orders")
	b := cached.Logger("orders")
	c := cached.Logger("billing")

	if constructions != 2 {
		t.Errorf("constructions = %d, want 2", constructions)
	}
	if a != b {
		t.Error("same category returned distinct handles")
	}
	if a == c {
		t.Error("distinct categories share a handle")
	}
}

func TestCached_Concurrent(t *testing.T) {
	sink := memorybackend.New()
	cached := backend.Cached(sink)

	done := make(chan backend.Logger, 16)
	for i := 0; i < cap(done); i++ {
		go func(n int) {
			done <- cached.Logger(core.Category("worker-" + strconv.Itoa(n%4)))
		}(i)
	}
	for i := 0; i < cap(done); i++ {
		(<-done).Info("ready")
	}

	if got := len(sink.Entries()); got != 16 {
		t.Errorf("entries = %d, want 16", got)
	}
}

func TestNop(t *testing.T) {
	log := backend.Nop().Logger("orders")

	stamp := &stampStringer{}
	log.Debug("dropped {}", stamp)
	log.Info("dropped {}", stamp)

	if log.DebugEnabled() {
		t.Error("DebugEnabled() = true, want false")
	}
	if log.InfoEnabled() {
		t.Error("InfoEnabled() = true, want false")
	}
	if stamp.calls != 0 {
		t.Errorf("Stringer called %d times, want 0", stamp.calls)
	}
}

// stampStringer counts how often it is stringified.
type stampStringer struct {
	calls int
}

func (s *stampStringer) String() string {
	s.calls++
	return "stamped"
}
