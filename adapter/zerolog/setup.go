package zerologadapter

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xtee"
	"github.com/trickstertwo/xtee/internal/sinks"
)

// Build assembles the sink set described by cfg: console and/or rotating
// file ConsoleWriters joined with zerolog.MultiLevelWriter.
func Build(cfg xtee.Config) (*Adapter, error) {
	var (
		writers []io.Writer
		closers []io.Closer
	)
	if cfg.EnableConsole {
		w, color := sinks.Console(cfg.Console, cfg.Color)
		writers = append(writers, ConsoleWriter(zerolog.SyncWriter(w), color))
	}
	if cfg.EnableFile {
		f, err := sinks.OpenRotatingFile(sinks.FileOptions{
			Path:       cfg.FilePath,
			MaxBytes:   cfg.MaxFileSize,
			MaxFiles:   cfg.MaxFiles,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
		if err != nil {
			return nil, err
		}
		writers = append(writers, ConsoleWriter(f, false))
		closers = append(closers, f)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	errOut := cfg.ErrorOutput
	if errOut == nil {
		errOut = os.Stderr
	}

	a := New(zerolog.New(&errorReporting{w: out, errOut: errOut}))
	a.SetMinLevel(cfg.Level)
	a.closers = closers
	return a, nil
}

// ConsoleWriter renders "[2006-01-02 15:04:05.000] [level] message".
// Only the level name is ever colored.
func ConsoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i interface{}) string {
			s, _ := i.(string)
			return "[" + s + "]"
		},
		FormatLevel: func(i interface{}) string {
			s, _ := i.(string)
			lvl, err := xtee.ParseLevel(s)
			if err != nil {
				return "[" + s + "]"
			}
			return sinks.Tag(lvl, color)
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}
}

// errorReporting reports write failures to errOut and swallows them, so
// zerolog never falls back to its global error handler.
type errorReporting struct {
	w      io.Writer
	errOut io.Writer
}

func (e *errorReporting) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil {
		fmt.Fprintf(e.errOut, "xtee: zerolog write error: %v\n", err)
		return len(p), nil
	}
	return n, nil
}
