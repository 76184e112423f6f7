package xtee

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env:
//
//	XTEE_NAME=<string>          : logger name
//	XTEE_FILE=<path>            : rotating file path
//	XTEE_CONSOLE=0|1            : console sink
//	XTEE_FILE_ENABLED=0|1       : file sink
//	XTEE_MAX_SIZE=<bytes>       : rotate after this many bytes
//	XTEE_MAX_FILES=<int>        : rotated files kept
//	XTEE_LEVEL=trace|...|critical
//	XTEE_FLUSH_LEVEL=trace|...|critical
//	XTEE_BACKEND=zap|zerolog
//	XTEE_COLOR=auto|always|never
//	XTEE_MAX_RATE=<int>         : messages per second, 0 = unlimited
//	XTEE_COMPRESS=0|1           : gzip rotated files
const envPrefix = "XTEE_"

// LoadEnv overlays XTEE_* environment variables onto base.
// Unset variables leave the base value untouched.
func LoadEnv(base Config) (Config, error) {
	return loadEnv(base, os.LookupEnv)
}

func loadEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("NAME"); ok {
		cfg.Name = v
	}
	if v, ok := get("FILE"); ok {
		cfg.FilePath = v
	}
	if v, ok := get("CONSOLE"); ok {
		b, err := parseBool("CONSOLE", v)
		if err != nil {
			return cfg, err
		}
		cfg.EnableConsole = b
	}
	if v, ok := get("FILE_ENABLED"); ok {
		b, err := parseBool("FILE_ENABLED", v)
		if err != nil {
			return cfg, err
		}
		cfg.EnableFile = b
	}
	if v, ok := get("MAX_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %sMAX_SIZE: %v", ErrInvalidConfig, envPrefix, err)
		}
		cfg.MaxFileSize = n
	}
	if v, ok := get("MAX_FILES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %sMAX_FILES: %v", ErrInvalidConfig, envPrefix, err)
		}
		cfg.MaxFiles = n
	}
	if v, ok := get("LEVEL"); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			return cfg, err
		}
		cfg.Level = lvl
	}
	if v, ok := get("FLUSH_LEVEL"); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			return cfg, err
		}
		cfg.FlushLevel = lvl
	}
	if v, ok := get("BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := get("COLOR"); ok {
		m, err := ParseColorMode(v)
		if err != nil {
			return cfg, err
		}
		cfg.Color = m
	}
	if v, ok := get("MAX_RATE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %sMAX_RATE: %v", ErrInvalidConfig, envPrefix, err)
		}
		cfg.MaxRate = n
	}
	if v, ok := get("COMPRESS"); ok {
		b, err := parseBool("COMPRESS", v)
		if err != nil {
			return cfg, err
		}
		cfg.Compress = b
	}
	return cfg, nil
}

func parseBool(key, v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s%s: not a boolean: %q", ErrInvalidConfig, envPrefix, key, v)
}
