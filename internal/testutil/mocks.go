package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FaultyFs wraps an afero.Fs and fails selected operations on selected paths.
// Reads and directory listings go through Open, writes through OpenFile and
// deletions through Remove.
type FaultyFs struct {
	afero.Fs

	OpenErrors   map[string]error
	WriteErrors  map[string]error
	RemoveErrors map[string]error

	mu    sync.Mutex
	Calls []string
}

// NewFaultyFs wraps base with empty fault tables
func NewFaultyFs(base afero.Fs) *FaultyFs {
	return &FaultyFs{
		Fs:           base,
		OpenErrors:   make(map[string]error),
		WriteErrors:  make(map[string]error),
		RemoveErrors: make(map[string]error),
	}
}

func (f *FaultyFs) record(op, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf("%s %s", op, filepath.Clean(name)))
}

func lookup(table map[string]error, name string) error {
	return table[filepath.Clean(name)]
}

// Open fails when name is listed in OpenErrors
func (f *FaultyFs) Open(name string) (afero.File, error) {
	f.record("OPEN", name)
	if err := lookup(f.OpenErrors, name); err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}

// OpenFile fails writes when name is listed in WriteErrors
func (f *FaultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		f.record("WRITE", name)
		if err := lookup(f.WriteErrors, name); err != nil {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}
	} else {
		f.record("OPEN", name)
		if err := lookup(f.OpenErrors, name); err != nil {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Create fails when name is listed in WriteErrors
func (f *FaultyFs) Create(name string) (afero.File, error) {
	f.record("WRITE", name)
	if err := lookup(f.WriteErrors, name); err != nil {
		return nil, &os.PathError{Op: "create", Path: name, Err: err}
	}
	return f.Fs.Create(name)
}

// Remove fails when name is listed in RemoveErrors
func (f *FaultyFs) Remove(name string) error {
	f.record("REMOVE", name)
	if err := lookup(f.RemoveErrors, name); err != nil {
		return &os.PathError{Op: "remove", Path: name, Err: err}
	}
	return f.Fs.Remove(name)
}

// CallsWithPrefix returns the recorded calls for one operation, e.g. "WRITE"
func (f *FaultyFs) CallsWithPrefix(op string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var calls []string
	for _, c := range f.Calls {
		if len(c) > len(op) && c[:len(op)+1] == op+" " {
			calls = append(calls, c[len(op)+1:])
		}
	}
	return calls
}

// Event is one call recorded by RecordingReporter
type Event struct {
	Level   string
	Msg     string
	Err     error
	Keyvals []any
}

// Value returns the value logged under key, or nil
func (e Event) Value(key string) any {
	for i := 0; i+1 < len(e.Keyvals); i += 2 {
		if k, ok := e.Keyvals[i].(string); ok && k == key {
			return e.Keyvals[i+1]
		}
	}
	return nil
}

// RecordingReporter records every event it receives
type RecordingReporter struct {
	Events []Event
}

// Debug records a debug event
func (r *RecordingReporter) Debug(msg string, keyvals ...any) {
	r.Events = append(r.Events, Event{Level: "debug", Msg: msg, Keyvals: keyvals})
}

// Info records an info event
func (r *RecordingReporter) Info(msg string, keyvals ...any) {
	r.Events = append(r.Events, Event{Level: "info", Msg: msg, Keyvals: keyvals})
}

// Warn records a warning
func (r *RecordingReporter) Warn(msg string, keyvals ...any) {
	r.Events = append(r.Events, Event{Level: "warn", Msg: msg, Keyvals: keyvals})
}

// Error records a failure
func (r *RecordingReporter) Error(msg string, err error, keyvals ...any) {
	r.Events = append(r.Events, Event{Level: "error", Msg: msg, Err: err, Keyvals: keyvals})
}

// ByLevel returns the events recorded at level
func (r *RecordingReporter) ByLevel(level string) []Event {
	var events []Event
	for _, e := range r.Events {
		if e.Level == level {
			events = append(events, e)
		}
	}
	return events
}

// Messages returns the messages recorded at level
func (r *RecordingReporter) Messages(level string) []string {
	var msgs []string
	for _, e := range r.ByLevel(level) {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

// HasMessage reports whether any event at level carries msg
func (r *RecordingReporter) HasMessage(level, msg string) bool {
	for _, m := range r.Messages(level) {
		if m == msg {
			return true
		}
	}
	return false
}
