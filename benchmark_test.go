package xtee

import (
	"testing"
	"time"

	"github.com/trickstertwo/xclock/adapter/frozen"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhT   time.Time
	bhLen int
)

type nopAdapter struct{}

func (nopAdapter) Log(level Level, msg string, at time.Time) {
	bhT = at
	bhLen = len(msg)
}
func (nopAdapter) Sync() error  { return nil }
func (nopAdapter) Close() error { return nil }

func newBenchLogger(min Level) *Logger {
	l, err := NewBuilder().
		WithAdapter(nopAdapter{}).
		WithLevel(min).
		Build()
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkInfo_Plain(b *testing.B) {
	l := newBenchLogger(LevelDebug)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "hello")
	}
}

func BenchmarkInfo_Disabled(b *testing.B) {
	l := newBenchLogger(LevelError)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("disabled %d", i)
	}
}

func BenchmarkInfof(b *testing.B) {
	l := newBenchLogger(LevelDebug)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d took %s", i, time.Millisecond)
	}
}

func BenchmarkInfo_WithCallback(b *testing.B) {
	l := newBenchLogger(LevelDebug)
	l.SetCallback(CallbackFunc(func(e Entry) { bhLen = len(e.Message) }))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "mirrored")
	}
}

func BenchmarkInfo_Parallel(b *testing.B) {
	l := newBenchLogger(LevelDebug)
	l.SetCallback(CallbackFunc(func(Entry) {}))
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Log(LevelInfo, "p")
		}
	})
}

// Frozen clock isolates the cost of the logger from the time source.
func BenchmarkInfo_FrozenClock(b *testing.B) {
	restore := frozen.Set(frozen.Config{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	defer restore()

	l := newBenchLogger(LevelDebug)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "frozen")
	}
}
