// Package logging is the application-facing API of xtee: an abstract
// severity enum, a six-field configuration and plain-text logging calls,
// all forwarded to the global xtee.Logger.
//
//	cfg := logging.DefaultConfig()
//	cfg.EnableFile = true
//	if err := logging.Init(cfg); err != nil {
//		log.Fatal(err)
//	}
//	defer logging.Close()
//	logging.SetCallback(func(text string) { pane.Append(text) })
//	logging.Info("ready")
package logging

import (
	"fmt"
	"sync"

	"github.com/trickstertwo/xtee"
	_ "github.com/trickstertwo/xtee/adapter/zap"
	_ "github.com/trickstertwo/xtee/adapter/zerolog"
)

// LogLevel is the API severity, independent of the core numbering.
type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

func (l LogLevel) String() string {
	if lvl, ok := toLevel(l); ok {
		return lvl.String()
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// toLevel maps l onto the core level; unknown values map to Info.
func toLevel(l LogLevel) (xtee.Level, bool) {
	switch l {
	case LevelTrace:
		return xtee.LevelTrace, true
	case LevelDebug:
		return xtee.LevelDebug, true
	case LevelInfo:
		return xtee.LevelInfo, true
	case LevelWarn:
		return xtee.LevelWarn, true
	case LevelError:
		return xtee.LevelError, true
	case LevelCritical:
		return xtee.LevelCritical, true
	}
	return xtee.LevelInfo, false
}

// Config describes the sink set.
type Config struct {
	LoggerName    string
	LogFilePath   string
	EnableConsole bool
	EnableFile    bool
	MaxFileSize   int64 // bytes
	MaxFiles      int
}

// DefaultConfig: "app", logs/app.log, console only, 10 MiB x 5.
func DefaultConfig() Config {
	return Config{
		LoggerName:    xtee.DefaultName,
		LogFilePath:   xtee.DefaultFilePath,
		EnableConsole: true,
		EnableFile:    false,
		MaxFileSize:   xtee.DefaultMaxFileSize,
		MaxFiles:      xtee.DefaultMaxFiles,
	}
}

func (c Config) core() xtee.Config {
	cfg := xtee.DefaultConfig()
	cfg.Name = c.LoggerName
	cfg.FilePath = c.LogFilePath
	cfg.EnableConsole = c.EnableConsole
	cfg.EnableFile = c.EnableFile
	cfg.MaxFileSize = c.MaxFileSize
	cfg.MaxFiles = c.MaxFiles
	return cfg
}

var installMu sync.Mutex

// global returns the global Logger, installing an empty one when none is set.
func global() *xtee.Logger {
	if l := xtee.Global(); l != nil {
		return l
	}
	installMu.Lock()
	defer installMu.Unlock()
	if l := xtee.Global(); l != nil {
		return l
	}
	l := xtee.New()
	xtee.SetGlobal(l)
	return l
}

// Init configures the global Logger's sinks and resets the threshold to
// Info. Call SetLevel afterwards to change it.
func Init(cfg Config) error {
	return global().Initialize(cfg.core())
}

// SetLevel changes the threshold. An unknown level selects Info and is
// reported through the logger itself.
func SetLevel(level LogLevel) {
	lvl, ok := toLevel(level)
	l := global()
	l.SetLevel(lvl)
	if !ok {
		l.Warnf("logging: unknown level %d, using %s", int(level), lvl)
	}
}

// SetCallback registers fn to receive the text of every emitted message,
// replacing any previous callback. nil clears it.
func SetCallback(fn func(text string)) {
	if fn == nil {
		global().SetCallback(nil)
		return
	}
	global().SetCallback(xtee.TextCallback(fn))
}

// Log emits text at level; unknown levels are logged at Info.
func Log(level LogLevel, text string) {
	if l := xtee.Global(); l != nil {
		lvl, _ := toLevel(level)
		l.Log(lvl, text)
	}
}

func Trace(text string)    { Log(LevelTrace, text) }
func Debug(text string)    { Log(LevelDebug, text) }
func Info(text string)     { Log(LevelInfo, text) }
func Warn(text string)     { Log(LevelWarn, text) }
func Error(text string)    { Log(LevelError, text) }
func Critical(text string) { Log(LevelCritical, text) }

// Close flushes and detaches the sinks. The callback stays registered.
func Close() error {
	if l := xtee.Global(); l != nil {
		_ = l.Sync()
		return l.Close()
	}
	return nil
}
