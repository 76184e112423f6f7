package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const megabyte = 1024 * 1024

// FileOptions describes the rotating file sink.
type FileOptions struct {
	Path       string
	MaxBytes   int64
	MaxFiles   int // rotated files kept; 0 keeps none
	MaxAgeDays int
	Compress   bool
}

// RotatingFile is a lumberjack.Logger that rotates on an exact byte budget.
// lumberjack only counts whole megabytes, so the budget is enforced here
// and lumberjack's own limit is set at or above it.
type RotatingFile struct {
	mu   sync.Mutex
	lj   *lumberjack.Logger
	max  int64
	size int64
	keep int
}

// OpenRotatingFile prepares the rotating file sink, creating its directory.
// The file itself is opened lazily by the first write and appended to when
// it already exists.
func OpenRotatingFile(o FileOptions) (*RotatingFile, error) {
	if o.Path == "" {
		return nil, fmt.Errorf("rotating file: empty path")
	}
	if o.MaxFiles < 0 {
		return nil, fmt.Errorf("rotating file: negative backup count %d", o.MaxFiles)
	}
	if err := os.MkdirAll(filepath.Dir(o.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   o.Path,
		MaxSize:    Megabytes(o.MaxBytes),
		MaxBackups: o.MaxFiles,
		MaxAge:     o.MaxAgeDays,
		Compress:   o.Compress,
		LocalTime:  true,
	}
	if o.MaxFiles == 0 {
		// lumberjack reads MaxBackups 0 as "keep all"; backups are removed
		// synchronously after each rotation instead.
		lj.Compress = false
	}

	f := &RotatingFile{lj: lj, max: o.MaxBytes, keep: o.MaxFiles}
	if info, err := os.Stat(o.Path); err == nil {
		f.size = info.Size()
	}
	return f, nil
}

// Write rotates first when p would push the active file past the budget.
// A single write larger than the budget lands alone in a fresh file.
func (f *RotatingFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.max > 0 && f.size > 0 && f.size+int64(len(p)) > f.max {
		if err := f.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := f.lj.Write(p)
	f.size += int64(n)
	return n, err
}

// Rotate closes the active file, renames it to a timestamped backup and
// starts a new one.
func (f *RotatingFile) Rotate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rotate()
}

func (f *RotatingFile) rotate() error {
	if err := f.lj.Rotate(); err != nil {
		return err
	}
	f.size = 0
	if f.keep == 0 {
		return f.removeBackups()
	}
	return nil
}

// removeBackups deletes every "<name>-<timestamp><ext>" file next to the
// active one.
func (f *RotatingFile) removeBackups() error {
	dir := filepath.Dir(f.lj.Filename)
	base := filepath.Base(f.lj.Filename)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "-"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == base {
			continue
		}
		if strings.HasPrefix(name, prefix) && (strings.HasSuffix(name, ext) || strings.HasSuffix(name, ext+".gz")) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}

func (f *RotatingFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lj.Close()
}

// Path returns the active file's path.
func (f *RotatingFile) Path() string { return f.lj.Filename }

// Megabytes converts a byte budget to lumberjack's whole-megabyte unit,
// rounding up, with a floor of one.
func Megabytes(n int64) int {
	if n <= megabyte {
		return 1
	}
	return int((n + megabyte - 1) / megabyte)
}
