package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xtee"
)

// resetGlobal isolates tests that touch the process-wide Logger.
func resetGlobal(t *testing.T) {
	t.Helper()
	prev := xtee.Global()
	xtee.SetGlobal(nil)
	t.Cleanup(func() {
		if l := xtee.Global(); l != nil {
			_ = l.Close()
		}
		xtee.SetGlobal(prev)
	})
}

type texts struct {
	mu  sync.Mutex
	got []string
}

func (c *texts) add(s string) {
	c.mu.Lock()
	c.got = append(c.got, s)
	c.mu.Unlock()
}

func (c *texts) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.got...)
}

func fileOnly(t *testing.T) (Config, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.LogFilePath = path
	return cfg, path
}

func TestToLevel(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want xtee.Level
		ok   bool
	}{
		{LevelTrace, xtee.LevelTrace, true},
		{LevelDebug, xtee.LevelDebug, true},
		{LevelInfo, xtee.LevelInfo, true},
		{LevelWarn, xtee.LevelWarn, true},
		{LevelError, xtee.LevelError, true},
		{LevelCritical, xtee.LevelCritical, true},
		{LogLevel(-1), xtee.LevelInfo, false},
		{LogLevel(42), xtee.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := toLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in.String())
		assert.Equal(t, tt.ok, ok, tt.in.String())
	}
	assert.Equal(t, "warning", LevelWarn.String())
	assert.Equal(t, "LogLevel(42)", LogLevel(42).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "app", cfg.LoggerName)
	assert.Equal(t, "logs/app.log", cfg.LogFilePath)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.EnableFile)
	assert.EqualValues(t, 10*1024*1024, cfg.MaxFileSize)
	assert.Equal(t, 5, cfg.MaxFiles)
}

func TestBeforeInit_NoOp(t *testing.T) {
	resetGlobal(t)

	assert.NotPanics(t, func() {
		Info("nobody")
		Log(LevelError, "nobody")
	})
	assert.Nil(t, xtee.Global())
	assert.NoError(t, Close())
}

func TestCallbackBeforeInit(t *testing.T) {
	resetGlobal(t)

	var c texts
	SetCallback(c.add)
	Warn("early")

	assert.Equal(t, []string{"early"}, c.all())
}

func TestInit_FileAndCallbackSeeSameText(t *testing.T) {
	resetGlobal(t)
	cfg, path := fileOnly(t)

	require.NoError(t, Init(cfg))
	var c texts
	SetCallback(c.add)
	SetLevel(LevelTrace)

	Trace("t")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	Critical("c")
	require.NoError(t, Close())

	assert.Equal(t, []string{"t", "d", "i", "w", "e", "c"}, c.all())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := `\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] `
	assert.Regexp(t, regexp.MustCompile(
		`^`+line+`\[trace\] t\n`+
			line+`\[debug\] d\n`+
			line+`\[info\] i\n`+
			line+`\[warning\] w\n`+
			line+`\[error\] e\n`+
			line+`\[critical\] c\n$`), string(content))
}

func TestSetLevel_Threshold(t *testing.T) {
	resetGlobal(t)
	cfg, _ := fileOnly(t)
	require.NoError(t, Init(cfg))

	var c texts
	SetCallback(c.add)
	SetLevel(LevelError)
	Warn("dropped")
	Error("kept")

	assert.Equal(t, []string{"kept"}, c.all())
}

func TestSetLevel_UnknownSelectsInfo(t *testing.T) {
	resetGlobal(t)
	cfg, _ := fileOnly(t)
	require.NoError(t, Init(cfg))

	var c texts
	SetCallback(c.add)
	SetLevel(LogLevel(99))

	assert.Equal(t, xtee.LevelInfo, xtee.L().Level())
	require.Len(t, c.all(), 1)
	assert.Contains(t, c.all()[0], "unknown level 99")
}

func TestInit_ResetsLevelToInfo(t *testing.T) {
	resetGlobal(t)
	SetLevel(LevelDebug)

	cfg, _ := fileOnly(t)
	require.NoError(t, Init(cfg))
	assert.Equal(t, xtee.LevelInfo, xtee.L().Level())

	var c texts
	SetCallback(c.add)
	Debug("dropped")
	Info("kept")
	assert.Equal(t, []string{"kept"}, c.all())

	SetLevel(LevelDebug)
	require.NoError(t, Init(cfg))
	Debug("dropped again")
	assert.Equal(t, []string{"kept"}, c.all())
}

func TestSetCallback_NilClears(t *testing.T) {
	resetGlobal(t)

	var c texts
	SetCallback(c.add)
	Info("one")
	SetCallback(nil)
	Info("two")

	assert.Equal(t, []string{"one"}, c.all())
}

func TestInit_InvalidConfig(t *testing.T) {
	resetGlobal(t)
	cfg := DefaultConfig()
	cfg.MaxFiles = -1

	assert.ErrorIs(t, Init(cfg), xtee.ErrInvalidConfig)
}
