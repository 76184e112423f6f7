package xtee

import "sync/atomic"

// Facade: global access (Singleton + Facade). The global is never created
// implicitly; the application installs one with SetGlobal or Use.
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter). nil uninstalls it.
func SetGlobal(l *Logger) { global.Store(l) }

// Global returns the global Logger, or nil when none is installed.
func Global() *Logger { return global.Load() }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("xtee: global logger not set. Build one and call xtee.SetGlobal(...) or xtee.Use(...)")
	}
	return l
}

// Use builds a Logger from cfg, installs it as the global logger and
// returns it. Single call, explicit, no envs.
func Use(cfg Config) (*Logger, error) {
	l, err := NewBuilder().WithConfig(cfg).Build()
	if err != nil {
		return nil, err
	}
	SetGlobal(l)
	return l, nil
}

// Facade helpers using the global Logger.
// Usage: xtee.Infof("listening on %s", addr)

func Trace(v ...any)    { L().Trace(v...) }
func Debug(v ...any)    { L().Debug(v...) }
func Info(v ...any)     { L().Info(v...) }
func Warn(v ...any)     { L().Warn(v...) }
func Error(v ...any)    { L().Error(v...) }
func Critical(v ...any) { L().Critical(v...) }

func Tracef(format string, args ...any)    { L().Tracef(format, args...) }
func Debugf(format string, args ...any)    { L().Debugf(format, args...) }
func Infof(format string, args ...any)     { L().Infof(format, args...) }
func Warnf(format string, args ...any)     { L().Warnf(format, args...) }
func Errorf(format string, args ...any)    { L().Errorf(format, args...) }
func Criticalf(format string, args ...any) { L().Criticalf(format, args...) }
