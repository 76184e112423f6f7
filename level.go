package xtee

import (
	"fmt"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Trace (-8) and Critical (12).
type Level int

const (
	LevelTrace    Level = -8
	LevelDebug    Level = -4
	LevelInfo     Level = 0
	LevelWarn     Level = 4
	LevelError    Level = 8
	LevelCritical Level = 12
)

// Levels returns every defined level in increasing urgency.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical}
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	switch l {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical:
		return true
	}
	return false
}

// String returns the name written into the [level] column.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel accepts the level names plus the usual aliases
// (warn, err, fatal, crit), case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "critical", "crit", "fatal":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("%w: unknown level %q", ErrInvalidConfig, s)
	}
}
