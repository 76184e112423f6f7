// Package sinks holds the writers and the line layout shared by the
// backends: the console (with terminal-aware color), the rotating file,
// and the "[time] [level] message" pattern pieces.
package sinks

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/trickstertwo/xtee"
)

// Console resolves the console writer and whether it should be colored.
// A nil w means stdout. Auto colors only *os.File terminals.
func Console(w io.Writer, mode xtee.ColorMode) (io.Writer, bool) {
	if w == nil {
		w = os.Stdout
	}
	color := false
	switch mode {
	case xtee.ColorAlways:
		color = true
	case xtee.ColorAuto:
		color = IsTerminal(w)
	}
	if f, ok := w.(*os.File); ok && color {
		// No-op outside Windows; translates ANSI for legacy consoles.
		return colorable.NewColorable(f), true
	}
	return w, color
}

// IsTerminal reports whether w is an interactive terminal (including
// Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
