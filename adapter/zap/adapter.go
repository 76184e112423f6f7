package zapadapter

import (
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtee"
)

// zap has no trace or critical; both get their own zapcore.Level so the
// level column can name them. DPanic never panics outside development mode,
// and entries are checked against the core directly, so no zap hooks run.
const (
	traceLevel    = zapcore.DebugLevel - 1
	criticalLevel = zapcore.DPanicLevel
)

// Adapter bridges xtee to go.uber.org/zap.
//
//   - Entries go straight to the zap core with xtee's authoritative timestamp,
//     so the [time] column is the same instant the callback sees.
//   - SetMinLevel drives a zap.AtomicLevel shared by every core.
//   - Close releases the rotating files the adapter opened.
type Adapter struct {
	l       *zap.Logger
	core    zapcore.Core
	al      zap.AtomicLevel
	errOut  zapcore.WriteSyncer
	closers []io.Closer
}

// New wraps an existing zap logger. al should be the level its cores use;
// a zero AtomicLevel gets a private one starting at trace.
func New(l *zap.Logger, al zap.AtomicLevel) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	if al == (zap.AtomicLevel{}) {
		al = zap.NewAtomicLevelAt(traceLevel)
	}
	return &Adapter{l: l, core: l.Core(), al: al}
}

// Zap returns the underlying logger for advanced usage.
func (a *Adapter) Zap() *zap.Logger { return a.l }

// Log emits a single entry. Write errors go to the adapter's error output;
// they are never returned to or panicked at the caller.
func (a *Adapter) Log(level xtee.Level, msg string, at time.Time) {
	ent := zapcore.Entry{
		Level:      toZapLevel(level),
		Time:       at,
		LoggerName: a.l.Name(),
		Message:    msg,
	}
	ce := a.core.Check(ent, nil)
	if ce == nil {
		return
	}
	ce.ErrorOutput = a.errOut
	ce.Write()
}

// SetMinLevel updates the shared backend filter.
func (a *Adapter) SetMinLevel(l xtee.Level) {
	a.al.SetLevel(toZapLevel(l))
}

func (a *Adapter) Sync() error {
	return a.core.Sync()
}

// Close syncs the cores and closes the rotating files. Console sync errors
// (EINVAL on pipes and terminals) are not reported.
func (a *Adapter) Close() error {
	_ = a.core.Sync()
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c.Close())
	}
	a.closers = nil
	return err
}

func toZapLevel(l xtee.Level) zapcore.Level {
	switch {
	case l <= xtee.LevelTrace:
		return traceLevel
	case l <= xtee.LevelDebug:
		return zapcore.DebugLevel
	case l <= xtee.LevelInfo:
		return zapcore.InfoLevel
	case l <= xtee.LevelWarn:
		return zapcore.WarnLevel
	case l <= xtee.LevelError:
		return zapcore.ErrorLevel
	default:
		return criticalLevel
	}
}

func fromZapLevel(l zapcore.Level) xtee.Level {
	switch {
	case l <= traceLevel:
		return xtee.LevelTrace
	case l == zapcore.DebugLevel:
		return xtee.LevelDebug
	case l == zapcore.InfoLevel:
		return xtee.LevelInfo
	case l == zapcore.WarnLevel:
		return xtee.LevelWarn
	case l == zapcore.ErrorLevel:
		return xtee.LevelError
	default:
		return xtee.LevelCritical
	}
}
