package zerologadapter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xtee"
)

var testAt = time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)

func newTestAdapter(t *testing.T, buf *bytes.Buffer, color xtee.ColorMode) *Adapter {
	t.Helper()
	cfg := xtee.DefaultConfig()
	cfg.Backend = Name
	cfg.Level = xtee.LevelTrace
	cfg.Console = buf
	cfg.Color = color
	a, err := Build(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestZerologAdapter_ConsolePattern(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAdapter(t, &buf, xtee.ColorNever)

	a.Log(xtee.LevelInfo, "state changed", testAt)

	assert.Equal(t, "[2024-12-31 23:59:59.123] [info] state changed\n", buf.String())
}

func TestZerologAdapter_KeepsTraceAndCritical(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAdapter(t, &buf, xtee.ColorNever)

	a.Log(xtee.LevelTrace, "fine grained", testAt)
	a.Log(xtee.LevelCritical, "no exit", testAt)

	assert.Equal(t,
		"[2024-12-31 23:59:59.123] [trace] fine grained\n"+
			"[2024-12-31 23:59:59.123] [critical] no exit\n",
		buf.String())
}

func TestZerologAdapter_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAdapter(t, &buf, xtee.ColorAlways)

	a.Log(xtee.LevelInfo, "green", testAt)

	assert.Equal(t, "[2024-12-31 23:59:59.123] [\033[32minfo\033[0m] green\n", buf.String())
}

func TestZerologAdapter_SetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAdapter(t, &buf, xtee.ColorNever)

	a.SetMinLevel(xtee.LevelError)
	a.Log(xtee.LevelWarn, "dropped", testAt)
	a.Log(xtee.LevelError, "kept", testAt)

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "[error] kept")
}

func TestZerologAdapter_ConsoleAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	cfg := xtee.DefaultConfig()
	cfg.Console = &buf
	cfg.Color = xtee.ColorAlways
	cfg.EnableFile = true
	cfg.FilePath = path

	a, err := Build(cfg)
	require.NoError(t, err)
	a.Log(xtee.LevelWarn, "both", testAt)
	require.NoError(t, a.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-12-31 23:59:59.123] [warning] both\n", string(content))
	assert.Contains(t, buf.String(), "\033[")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestZerologAdapter_WriteErrorGoesToErrorOutput(t *testing.T) {
	var errBuf bytes.Buffer
	cfg := xtee.DefaultConfig()
	cfg.Console = failingWriter{}
	cfg.ErrorOutput = &errBuf

	a, err := Build(cfg)
	require.NoError(t, err)

	assert.NotPanics(t, func() { a.Log(xtee.LevelError, "lost", testAt) })
	assert.Contains(t, errBuf.String(), "disk full")
}

func TestInitializeSelectsZerolog(t *testing.T) {
	var buf bytes.Buffer
	cfg := xtee.DefaultConfig()
	cfg.Backend = Name
	cfg.Console = &buf
	cfg.Color = xtee.ColorNever

	l, err := xtee.NewBuilder().WithConfig(cfg).Build()
	require.NoError(t, err)
	defer l.Close()

	_, ok := l.Adapter().(*Adapter)
	require.True(t, ok, "got %T", l.Adapter())

	l.Warnf("%d files left", 3)
	assert.Contains(t, buf.String(), "[warning] 3 files left\n")
}
