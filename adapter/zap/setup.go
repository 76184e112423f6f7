package zapadapter

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtee"
	"github.com/trickstertwo/xtee/internal/sinks"
)

// Build assembles the sink set described by cfg: a console core and/or a
// rotating file core joined with zapcore.NewTee, all sharing one
// AtomicLevel. Both render "[time] [level] message"; only the console
// colors the level.
func Build(cfg xtee.Config) (*Adapter, error) {
	al := zap.NewAtomicLevelAt(toZapLevel(cfg.Level))

	var (
		cores   []zapcore.Core
		closers []io.Closer
	)
	if cfg.EnableConsole {
		w, color := sinks.Console(cfg.Console, cfg.Color)
		enc := zapcore.NewConsoleEncoder(EncoderConfig(color))
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), al))
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
		enc := zapcore.NewConsoleEncoder(EncoderConfig(false))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), al))
		closers = append(closers, f)
	}

	errOut := cfg.ErrorOutput
	if errOut == nil {
		errOut = os.Stderr
	}
	ws := zapcore.Lock(zapcore.AddSync(errOut))

	zl := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(ws)).Named(cfg.Name)

	a := New(zl, al)
	a.errOut = ws
	a.closers = closers
	return a, nil
}

// EncoderConfig lays out "[2006-01-02 15:04:05.000] [level] message".
// The logger name, caller and stack columns are disabled.
func EncoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(sinks.Stamp(t))
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(sinks.Tag(fromZapLevel(l), color))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
