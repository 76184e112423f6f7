package xtee

import "time"

// Adapter is the sink-set Strategy (e.g., zap console + rotating file).
// Log receives the single authoritative timestamp 'at' from the Logger so the
// sinks and the callback agree on when an entry happened.
type Adapter interface {
	Log(level Level, msg string, at time.Time)
	Sync() error
	Close() error
}

// adapterLevelSetter is an optional interface adapters can implement
// to receive threshold changes from Logger.SetLevel.
type adapterLevelSetter interface {
	SetMinLevel(Level)
}
