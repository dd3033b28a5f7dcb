package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a flattened log record: level, message and every attribute
// keyed by name. Attributes inside groups are keyed "group.name".
type LogEntry map[string]any

// Level returns the entry's level string, e.g. "WARN".
func (e LogEntry) Level() string {
	s, _ := e["level"].(string)
	return s
}

// Message returns the entry's log message.
func (e LogEntry) Message() string {
	s, _ := e["message"].(string)
	return s
}

// LogCapture is a memory-backed slog.Handler for testing. Handlers derived
// through WithAttrs and WithGroup write to the same entry list.
type LogCapture struct {
	store  *logStore
	attrs  []slog.Attr
	prefix string
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogCapture creates an empty capture handler.
func NewLogCapture() *LogCapture {
	return &LogCapture{store: &logStore{}}
}

// Logger returns a logger writing to h.
func (h *LogCapture) Logger() *slog.Logger {
	return slog.New(h)
}

// Enabled satisfies slog.Handler; every level is captured.
func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, a := range h.attrs {
		addAttr(entry, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(entry, h.prefix, a)
		return true
	})

	h.store.mu.Lock()
	h.store.entries = append(h.store.entries, entry)
	h.store.mu.Unlock()
	return nil
}

// WithAttrs satisfies slog.Handler.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup satisfies slog.Handler.
func (h *LogCapture) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// Entries returns a copy of all captured entries.
func (h *LogCapture) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	out := make([]LogEntry, len(h.store.entries))
	copy(out, h.store.entries)
	return out
}

// Find returns the first entry with the given message.
func (h *LogCapture) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e.Message() == message {
			return e, true
		}
	}
	return nil, false
}

// Clear drops all captured entries.
func (h *LogCapture) Clear() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = nil
}

func addAttr(entry LogEntry, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			addAttr(entry, prefix+a.Key+".", ga)
		}
		return
	}
	entry[prefix+a.Key] = v.Any()
}
