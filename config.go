package xtee

import (
	"fmt"
	"io"
	"strings"
)

// ColorMode controls ANSI coloring of the [level] column on the console sink.
type ColorMode int

const (
	// ColorAuto colors only when the console is an interactive terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("color(%d)", int(m))
	}
}

// ParseColorMode accepts auto, always/on/true and never/off/false.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true", "1":
		return ColorAlways, nil
	case "never", "off", "false", "0":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, s)
	}
}

const (
	DefaultName        = "app"
	DefaultFilePath    = "logs/app.log"
	DefaultMaxFileSize = 10 * 1024 * 1024
	DefaultMaxFiles    = 5
	DefaultBackend     = "zap"
)

// Config is an explicit, code-first description of the sink set.
//
// The zero value is usable: Initialize fills Name, FilePath, MaxFileSize
// and Backend, and falls back to a console sink when neither sink is
// enabled. Level's zero value is LevelInfo. FlushLevel's zero value is read
// as unset and becomes LevelWarn; LevelTrace flushes every entry. MaxFiles
// is taken as given: 0 keeps no rotated files, DefaultConfig keeps 5.
type Config struct {
	Name          string
	FilePath      string
	EnableConsole bool
	EnableFile    bool
	MaxFileSize   int64 // bytes before the file rotates
	MaxFiles      int   // rotated files kept next to the active one; 0 keeps none

	Level       Level
	FlushLevel  Level  // entries at or above this level are followed by Sync; zero means LevelWarn
	Backend     string // registered backend name; default "zap"
	Color       ColorMode
	Console     io.Writer // default os.Stdout
	ErrorOutput io.Writer // sink write and close errors; default os.Stderr
	Compress    bool      // gzip rotated files
	MaxAgeDays  int       // 0 keeps rotated files regardless of age
	MaxRate     int       // messages per second, 0 = unlimited
}

// DefaultConfig returns console-only output at Info, flushing on Warn,
// with a 10 MiB x 5 rotation policy ready for EnableFile.
func DefaultConfig() Config {
	return Config{
		Name:          DefaultName,
		FilePath:      DefaultFilePath,
		EnableConsole: true,
		EnableFile:    false,
		MaxFileSize:   DefaultMaxFileSize,
		MaxFiles:      DefaultMaxFiles,
		Level:         LevelInfo,
		FlushLevel:    LevelWarn,
		Backend:       DefaultBackend,
		Color:         ColorAuto,
	}
}

// withDefaults fills empty fields. A config with no sinks gets the console.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.FilePath == "" {
		c.FilePath = DefaultFilePath
	}
	if c.MaxFileSize == 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.FlushLevel == LevelInfo {
		c.FlushLevel = LevelWarn
	}
	if !c.EnableConsole && !c.EnableFile {
		c.EnableConsole = true
	}
	return c
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !c.Level.Valid():
		return fmt.Errorf("%w: level %d", ErrInvalidConfig, int(c.Level))
	case !c.FlushLevel.Valid():
		return fmt.Errorf("%w: flush level %d", ErrInvalidConfig, int(c.FlushLevel))
	case c.MaxFileSize < 0:
		return fmt.Errorf("%w: max file size cannot be negative", ErrInvalidConfig)
	case c.MaxFiles < 0:
		return fmt.Errorf("%w: max files cannot be negative", ErrInvalidConfig)
	case c.MaxAgeDays < 0:
		return fmt.Errorf("%w: max age cannot be negative", ErrInvalidConfig)
	case c.MaxRate < 0:
		return fmt.Errorf("%w: max rate cannot be negative", ErrInvalidConfig)
	case c.Color < ColorAuto || c.Color > ColorNever:
		return fmt.Errorf("%w: color mode %d", ErrInvalidConfig, int(c.Color))
	case c.EnableFile && strings.TrimSpace(c.FilePath) == "":
		return fmt.Errorf("%w: file sink enabled without a path", ErrInvalidConfig)
	}
	return nil
}
