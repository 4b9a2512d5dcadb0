package zapbackend

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.LevelEnabler) (*Factory, *observer.ObservedLogs) {
	zc, logs := observer.New(level)
	return New(Config{Base: zap.New(zc)}), logs
}

func TestLogger_CategoryAsName(t *testing.T) {
	f, logs := newObserved(zapcore.DebugLevel)
	log := f.Logger("checkout")

	log.Info("order {} placed", 7)
	log.Debug("reserving {} items", 2)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for i, e := range entries {
		if e.LoggerName != "checkout" {
			t.Errorf("entries[%d].LoggerName = %q, want %q", i, e.LoggerName, "checkout")
		}
	}
	if entries[0].Message != "order 7 placed" {
		t.Errorf("message = %q, want %q", entries[0].Message, "order 7 placed")
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("level = %v, want %v", entries[0].Level, zapcore.InfoLevel)
	}
	if entries[1].Level != zapcore.DebugLevel {
		t.Errorf("level = %v, want %v", entries[1].Level, zapcore.DebugLevel)
	}
}

func TestLogger_LevelGate(t *testing.T) {
	f, logs := newObserved(zapcore.InfoLevel)
	log := f.Logger("checkout")

	if log.DebugEnabled() {
		t.Error("DebugEnabled() = true, want false")
	}
	if !log.InfoEnabled() {
		t.Error("InfoEnabled() = false, want true")
	}

	stamp := &stampStringer{}
	log.Debug("state {}", stamp)
	if stamp.calls != 0 {
		t.Errorf("Stringer called %d times for suppressed debug, want 0", stamp.calls)
	}
	log.Info("state {}", stamp)
	if stamp.calls != 1 {
		t.Errorf("Stringer called %d times, want 1", stamp.calls)
	}

	if got := len(logs.All()); got != 1 {
		t.Errorf("len(entries) = %d, want 1", got)
	}
}

func TestNew_DefaultBase(t *testing.T) {
	f := New(Config{})
	log := f.Logger("checkout")

	// zap.NewProduction logs at info and above.
	if log.DebugEnabled() {
		t.Error("DebugEnabled() = true, want false for production default")
	}
	if !log.InfoEnabled() {
		t.Error("InfoEnabled() = false, want true for production default")
	}
}

func TestLogger_Zap(t *testing.T) {
	f, logs := newObserved(zapcore.DebugLevel)
	log := f.Logger("checkout").(*Logger)

	log.Zap().Warn("disk filling", zap.Int("percent", 93))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want %v", entries[0].Level, zapcore.WarnLevel)
	}
	if entries[0].LoggerName != "checkout" {
		t.Errorf("LoggerName = %q, want %q", entries[0].LoggerName, "checkout")
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
