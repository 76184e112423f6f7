package xtee

import "time"

// Entry is handed to the Callback for each emitted message.
// Message is exactly the text written to the sinks.
type Entry struct {
	At      time.Time
	Level   Level
	Logger  string
	Message string
}

// Callback receives every emitted entry, e.g. to mirror logs into a UI pane.
// Implementations MUST be concurrency-safe; OnLog may itself log.
type Callback interface {
	OnLog(e Entry)
}

// CallbackFunc adapter.
type CallbackFunc func(Entry)

func (f CallbackFunc) OnLog(e Entry) { f(e) }

// TextCallback adapts a func that only wants the message text.
type TextCallback func(string)

func (f TextCallback) OnLog(e Entry) { f(e.Message) }

// isNilCallback catches nil funcs wrapped in a non-nil interface.
func isNilCallback(cb Callback) bool {
	switch f := cb.(type) {
	case nil:
		return true
	case CallbackFunc:
		return f == nil
	case TextCallback:
		return f == nil
	}
	return false
}
