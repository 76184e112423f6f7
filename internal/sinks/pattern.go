package sinks

import (
	"time"

	"github.com/trickstertwo/xtee"
)

// TimeLayout renders YYYY-MM-DD HH:MM:SS.mmm.
const TimeLayout = "2006-01-02 15:04:05.000"

const reset = "\033[0m"

var palette = map[xtee.Level]string{
	xtee.LevelTrace:    "\033[37m",
	xtee.LevelDebug:    "\033[36m",
	xtee.LevelInfo:     "\033[32m",
	xtee.LevelWarn:     "\033[33;1m",
	xtee.LevelError:    "\033[31;1m",
	xtee.LevelCritical: "\033[1;41m",
}

// Stamp renders the bracketed time column.
func Stamp(t time.Time) string {
	return "[" + t.Format(TimeLayout) + "]"
}

// Tag renders the bracketed level column; only the name is colored.
func Tag(l xtee.Level, color bool) string {
	name := l.String()
	if c, ok := palette[l]; ok && color {
		return "[" + c + name + reset + "]"
	}
	return "[" + name + "]"
}

// Line renders a full uncolored line, newline included.
func Line(at time.Time, l xtee.Level, msg string) string {
	return Stamp(at) + " " + Tag(l, false) + " " + msg + "\n"
}
