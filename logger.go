package xtee

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
	"golang.org/x/time/rate"
)

// Logger fans each message out to the active sink set and to the
// registered Callback.
//
// The sink set is an immutable value swapped atomically by Initialize.
// The callback is guarded by cbMu, which is held only to copy or assign
// the interface value, never while sinks or the callback run.
type Logger struct {
	sinks   atomic.Pointer[sinkSet]
	level   atomic.Int64
	dropped atomic.Uint64
	clock   xclock.Clock // optional; nil follows xclock.Default()

	cbMu     sync.Mutex
	callback Callback
}

// sinkSet is everything Initialize derives from a Config.
type sinkSet struct {
	adapter Adapter
	name    string
	flushAt Level
	limiter *rate.Limiter
	errOut  io.Writer
}

// New returns a Logger at LevelInfo with no sinks attached. Until
// Initialize or Attach, messages reach only the callback.
func New() *Logger {
	l := &Logger{}
	l.level.Store(int64(LevelInfo))
	return l
}

// Initialize builds the configured backend and makes it the active sink set,
// closing the one it replaces. It also resets the threshold to cfg.Level.
//
// Initialize is meant to run once at startup; logging concurrently with a
// re-Initialize may reach either sink set.
func (l *Logger) Initialize(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	factory, ok := lookupBackend(cfg.Backend)
	if !ok {
		return fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, cfg.Backend, Backends())
	}
	ad, err := factory(cfg)
	if err != nil {
		return fmt.Errorf("xtee: build %s backend: %w", cfg.Backend, err)
	}
	return l.attach(ad, cfg)
}

// Attach is Initialize with a caller-built adapter; cfg.Backend is ignored.
func (l *Logger) Attach(a Adapter, cfg Config) error {
	if a == nil {
		return ErrNoAdapter
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return l.attach(a, cfg)
}

func (l *Logger) attach(a Adapter, cfg Config) error {
	s := &sinkSet{
		adapter: a,
		name:    cfg.Name,
		flushAt: cfg.FlushLevel,
		errOut:  cfg.ErrorOutput,
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	if cfg.MaxRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.MaxRate), cfg.MaxRate)
	}

	l.SetLevel(cfg.Level)
	if ls, ok := a.(adapterLevelSetter); ok {
		ls.SetMinLevel(cfg.Level)
	}

	if old := l.sinks.Swap(s); old != nil {
		if err := old.adapter.Close(); err != nil {
			fmt.Fprintf(s.errOut, "xtee: close replaced sinks: %v\n", err)
		}
	}
	return nil
}

// SetLevel updates the minimum level that is emitted.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int64(level))
	if s := l.sinks.Load(); s != nil {
		if ls, ok := s.adapter.(adapterLevelSetter); ok {
			ls.SetMinLevel(level)
		}
	}
}

// Level returns the current threshold.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building messages in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// SetCallback replaces the registered callback; nil, including a nil
// CallbackFunc or TextCallback, clears it. A nil pointer of some other
// Callback type is registered as is and must handle a nil receiver.
// Messages emitted before the call never reach cb, and the previous
// callback receives nothing emitted after it returns.
func (l *Logger) SetCallback(cb Callback) {
	if isNilCallback(cb) {
		cb = nil
	}
	l.cbMu.Lock()
	l.callback = cb
	l.cbMu.Unlock()
}

func (l *Logger) loadCallback() Callback {
	l.cbMu.Lock()
	defer l.cbMu.Unlock()
	return l.callback
}

// Log writes text to every active sink and then to the callback.
func (l *Logger) Log(level Level, text string) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, text)
}

// Logf formats once, after the threshold check, and shares the result
// between the sinks and the callback.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

func (l *Logger) emit(level Level, text string) {
	s := l.sinks.Load()
	if s != nil && s.limiter != nil && !s.limiter.Allow() {
		l.dropped.Add(1)
		return
	}

	// Single authoritative timestamp for sinks and callback.
	at := l.now()

	name := ""
	if s != nil {
		name = s.name
		s.adapter.Log(level, text, at)
		if level >= s.flushAt {
			// Console Sync fails on pipes and terminals; nothing to report.
			_ = s.adapter.Sync()
		}
	}

	if cb := l.loadCallback(); cb != nil {
		cb.OnLog(Entry{At: at, Level: level, Logger: name, Message: text})
	}
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// Sync flushes the active sink set.
func (l *Logger) Sync() error {
	if s := l.sinks.Load(); s != nil {
		return s.adapter.Sync()
	}
	return nil
}

// Close detaches and closes the active sink set. The Logger stays usable:
// later messages reach only the callback until the next Initialize.
func (l *Logger) Close() error {
	s := l.sinks.Swap(nil)
	if s == nil {
		return nil
	}
	return s.adapter.Close()
}

// Adapter returns the active backend adapter, or nil, for advanced usage
// such as reaching the underlying *zap.Logger.
func (l *Logger) Adapter() Adapter {
	if s := l.sinks.Load(); s != nil {
		return s.adapter
	}
	return nil
}

// Name returns the configured logger name, or "" before Initialize.
func (l *Logger) Name() string {
	if s := l.sinks.Load(); s != nil {
		return s.name
	}
	return ""
}

// Dropped counts messages discarded by the MaxRate limiter.
func (l *Logger) Dropped() uint64 { return l.dropped.Load() }

// Level entry points. The plain forms join their operands like fmt.Sprint,
// the f forms format like fmt.Sprintf.

func (l *Logger) Trace(v ...any)    { l.print(LevelTrace, v) }
func (l *Logger) Debug(v ...any)    { l.print(LevelDebug, v) }
func (l *Logger) Info(v ...any)     { l.print(LevelInfo, v) }
func (l *Logger) Warn(v ...any)     { l.print(LevelWarn, v) }
func (l *Logger) Error(v ...any)    { l.print(LevelError, v) }
func (l *Logger) Critical(v ...any) { l.print(LevelCritical, v) }

func (l *Logger) Tracef(format string, args ...any)    { l.Logf(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any)    { l.Logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)     { l.Logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)     { l.Logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any)    { l.Logf(LevelError, format, args...) }
func (l *Logger) Criticalf(format string, args ...any) { l.Logf(LevelCritical, format, args...) }

func (l *Logger) print(level Level, v []any) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, fmt.Sprint(v...))
}
