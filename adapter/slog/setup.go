package slogadapter

import (
	"log/slog"

	"github.com/trickstertwo/xtee"
)

// LevelTrace and LevelCritical name xtee's extra levels for slog callers.
const (
	LevelTrace    = slog.Level(xtee.LevelTrace)
	LevelCritical = slog.Level(xtee.LevelCritical)
)

// NewLogger returns a *slog.Logger writing through l.
func NewLogger(l *xtee.Logger) *slog.Logger {
	return slog.New(NewHandler(l))
}

// Use routes the process-wide slog default (and the standard log package)
// through l, and returns the previous default for restoration.
func Use(l *xtee.Logger) (previous *slog.Logger) {
	previous = slog.Default()
	slog.SetDefault(NewLogger(l))
	return previous
}
