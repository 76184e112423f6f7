package zerologadapter

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/trickstertwo/xtee"
	"github.com/trickstertwo/xtee/internal/sinks"
)

// Adapter bridges xtee to rs/zerolog.
//
//   - Filtering happens here on an atomic threshold, before any Event is
//     allocated, so SetMinLevel is safe while other goroutines log.
//   - Events are started with Logger.Log() and carry xtee's own level name,
//     which keeps trace and critical intact and is immune to
//     zerolog.SetGlobalLevel and to Fatal's os.Exit.
//   - The authoritative timestamp is written as a preformatted string,
//     so zerolog.TimeFieldFormat is never touched.
type Adapter struct {
	l       zerolog.Logger
	min     atomic.Int64
	closers []io.Closer
}

func New(l zerolog.Logger) *Adapter {
	a := &Adapter{l: l}
	a.min.Store(int64(xtee.LevelTrace))
	return a
}

// Zerolog returns the underlying logger for advanced usage.
func (a *Adapter) Zerolog() zerolog.Logger { return a.l }

// Log emits a single entry.
func (a *Adapter) Log(level xtee.Level, msg string, at time.Time) {
	// Fast path: drop early if below min level (no Event allocation).
	if int64(level) < a.min.Load() {
		return
	}
	a.l.Log().
		Str(zerolog.TimestampFieldName, at.Format(sinks.TimeLayout)).
		Str(zerolog.LevelFieldName, level.String()).
		Msg(msg)
}

// SetMinLevel allows xtee.Logger to propagate its threshold (optional interface).
func (a *Adapter) SetMinLevel(l xtee.Level) {
	a.min.Store(int64(l))
}

// Sync is a no-op: zerolog writes through, and lumberjack has no buffer.
func (a *Adapter) Sync() error { return nil }

// Close releases the rotating files the adapter opened.
func (a *Adapter) Close() error {
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c.Close())
	}
	a.closers = nil
	return err
}
