// Package xteetest provides a recording Callback and an in-memory Adapter
// for tests of code that logs through xtee.
package xteetest

import (
	"sync"
	"time"

	"github.com/trickstertwo/xtee"
	"github.com/trickstertwo/xtee/internal/sinks"
)

// Recorder is a concurrency-safe Callback collecting every entry.
type Recorder struct {
	mu      sync.Mutex
	entries []xtee.Entry
}

func NewRecorder() *Recorder { return &Recorder{} }

// OnLog appends e. A nil *Recorder ignores it.
func (r *Recorder) OnLog(e xtee.Entry) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of what has been recorded so far.
func (r *Recorder) Entries() []xtee.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]xtee.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded message texts in arrival order.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Record is one entry as seen by Adapter.
type Record struct {
	At      time.Time
	Level   xtee.Level
	Message string
}

// Adapter is an in-memory xtee.Adapter. It honours SetMinLevel and counts
// Sync and Close calls.
type Adapter struct {
	mu      sync.Mutex
	records []Record
	min     xtee.Level
	syncs   int
	closed  bool
}

func NewAdapter() *Adapter { return &Adapter{min: xtee.LevelTrace} }

func (a *Adapter) Log(level xtee.Level, msg string, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if level < a.min {
		return
	}
	a.records = append(a.records, Record{At: at, Level: level, Message: msg})
}

func (a *Adapter) SetMinLevel(l xtee.Level) {
	a.mu.Lock()
	a.min = l
	a.mu.Unlock()
}

func (a *Adapter) Sync() error {
	a.mu.Lock()
	a.syncs++
	a.mu.Unlock()
	return nil
}

func (a *Adapter) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return nil
}

// Records returns a copy of what has been written so far.
func (a *Adapter) Records() []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// Messages returns the written message texts in order.
func (a *Adapter) Messages() []string {
	recs := a.Records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Message
	}
	return out
}

// Lines renders the records the way the console and file sinks do,
// uncolored: "[2006-01-02 15:04:05.000] [level] message\n".
func (a *Adapter) Lines() []string {
	recs := a.Records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = sinks.Line(r.At, r.Level, r.Message)
	}
	return out
}

func (a *Adapter) Syncs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.syncs
}

func (a *Adapter) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}
