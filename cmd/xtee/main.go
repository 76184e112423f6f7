package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/trickstertwo/xtee"
	_ "github.com/trickstertwo/xtee/adapter/zap"
	_ "github.com/trickstertwo/xtee/adapter/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := xtee.LoadEnv(xtee.DefaultConfig())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("xtee", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs) }

	var (
		level      = fs.String("level", cfg.Level.String(), "minimum level: trace|debug|info|warning|error|critical")
		flushLevel = fs.String("flush-level", cfg.FlushLevel.String(), "flush sinks after entries at or above this level (info reads as warning, trace flushes all)")
		color      = fs.String("color", cfg.Color.String(), "console color: auto|always|never")
		emit       = fs.String("emit", "info", "level for lines read from stdin")
		teeStdin   = fs.Bool("stdin", false, "log stdin lines even when stdin is a terminal")
		list       = fs.Bool("backends", false, "print the registered backends and exit")
	)
	fs.StringVar(&cfg.Name, "name", cfg.Name, "logger name")
	fs.StringVar(&cfg.FilePath, "file", cfg.FilePath, "rotating log file path")
	fs.BoolVar(&cfg.EnableConsole, "console", cfg.EnableConsole, "write to the console")
	fs.BoolVar(&cfg.EnableFile, "to-file", cfg.EnableFile, "write to the rotating file")
	fs.Int64Var(&cfg.MaxFileSize, "max-size", cfg.MaxFileSize, "rotate before the active file exceeds this many bytes")
	fs.IntVar(&cfg.MaxFiles, "max-files", cfg.MaxFiles, "rotated files to keep, 0 keeps none")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "backend: "+strings.Join(xtee.Backends(), "|"))
	fs.IntVar(&cfg.MaxRate, "rate", cfg.MaxRate, "messages per second, 0 = unlimited")
	fs.BoolVar(&cfg.Compress, "compress", cfg.Compress, "gzip rotated files")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *list {
		for _, name := range xtee.Backends() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	emitLevel, err := xtee.ParseLevel(*emit)
	if err == nil {
		cfg.Level, err = xtee.ParseLevel(*level)
	}
	if err == nil {
		cfg.FlushLevel, err = xtee.ParseLevel(*flushLevel)
	}
	if err == nil {
		cfg.Color, err = xtee.ParseColorMode(*color)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Console = stdout
	cfg.ErrorOutput = stderr

	l, err := xtee.Use(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := l.Close(); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to close log sinks: %v\n", err)
		}
	}()

	l.Infof("%s initialized (backend=%s, console=%t, file=%t)", cfg.Name, cfg.Backend, cfg.EnableConsole, cfg.EnableFile)
	if cfg.EnableFile {
		l.Debugf("logging to %s (max %d bytes, %d rotated files)", cfg.FilePath, cfg.MaxFileSize, cfg.MaxFiles)
	}

	if !*teeStdin && !piped(stdin) {
		return 0
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		l.Log(emitLevel, sc.Text())
	}
	if err := sc.Err(); err != nil {
		l.Errorf("reading stdin: %v", err)
		return 1
	}
	if n := l.Dropped(); n > 0 {
		l.Warnf("%d lines dropped by the rate limit", n)
	}
	return 0
}

// piped reports whether r is a non-terminal file such as a pipe or redirect.
func piped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Usage: xtee [flags]

Initializes the logger and, when stdin is piped, logs each input line.
Settings are applied in order: defaults, XTEE_* environment, flags.

Examples:
  some-service 2>&1 | xtee -to-file -file logs/svc.log
  xtee -backend zerolog -level debug -stdin

Flags:
`)
	fs.PrintDefaults()
}
