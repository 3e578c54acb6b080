package logger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// consoleCapacity bounds the in-memory log buffer while the TUI owns the
// terminal.
const consoleCapacity = 1000

// Entry is a single captured log record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string // formatted key=value pairs
}

// String renders the entry the way it is dumped after a TUI session.
func (e Entry) String() string {
	if e.Attrs == "" {
		return fmt.Sprintf("%s %s %s", e.Time.Format("15:04:05"), FormatLevel(e.Level), e.Message)
	}
	return fmt.Sprintf("%s %s %s %s", e.Time.Format("15:04:05"), FormatLevel(e.Level), e.Message, e.Attrs)
}

// ConsoleBuffer is a ring buffer of captured log entries.
type ConsoleBuffer struct {
	entries []Entry
	size    int
	head    int
	count   int
	mu      sync.RWMutex
}

// NewConsoleBuffer creates a ring buffer with the given capacity.
func NewConsoleBuffer(capacity int) *ConsoleBuffer {
	return &ConsoleBuffer{
		entries: make([]Entry, capacity),
		size:    capacity,
	}
}

// Add appends an entry, evicting the oldest when full.
func (b *ConsoleBuffer) Add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = entry
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
}

// Recent returns the n most recent entries, newest first.
func (b *ConsoleBuffer) Recent(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > b.count {
		n = b.count
	}
	if n == 0 {
		return nil
	}

	result := make([]Entry, n)
	// head is the next write position, so head-1 is the newest entry
	for i := 0; i < n; i++ {
		idx := (b.head - 1 - i + b.size) % b.size
		result[i] = b.entries[idx]
	}

	return result
}

// Clear empties the buffer.
func (b *ConsoleBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head = 0
	b.count = 0
}

// Count returns the number of buffered entries.
func (b *ConsoleBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// ConsoleHandler is a slog handler that captures records into a ring buffer
// instead of writing to the terminal.
type ConsoleHandler struct {
	buffer *ConsoleBuffer
	level  slog.Level
	attrs  []slog.Attr
}

// NewConsoleHandler creates a handler capturing to buffer at the given level.
func NewConsoleHandler(buffer *ConsoleBuffer, level slog.Level) *ConsoleHandler {
	return &ConsoleHandler{
		buffer: buffer,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle captures the record into the buffer.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var attrs string
	r.Attrs(func(a slog.Attr) bool {
		if attrs != "" {
			attrs += " "
		}
		attrs += fmt.Sprintf("%s=%v", a.Key, a.Value.Any())
		return true
	})

	for _, a := range h.attrs {
		if attrs != "" {
			attrs += " "
		}
		attrs += fmt.Sprintf("%s=%v", a.Key, a.Value.Any())
	}

	h.buffer.Add(Entry{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs returns a new handler with the given attributes
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &ConsoleHandler{
		buffer: h.buffer,
		level:  h.level,
		attrs:  make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

// WithGroup returns the handler unchanged; groups are flattened into attrs.
func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

var (
	consoleBuffer     *ConsoleBuffer
	consoleBufferOnce sync.Once
)

// Console returns the shared capture buffer, creating it on first use.
func Console() *ConsoleBuffer {
	consoleBufferOnce.Do(func() {
		consoleBuffer = NewConsoleBuffer(consoleCapacity)
	})
	return consoleBuffer
}

// FormatLevel returns a short string for the log level
func FormatLevel(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DBG"
	case slog.LevelInfo:
		return "INF"
	case slog.LevelWarn:
		return "WRN"
	case slog.LevelError:
		return "ERR"
	default:
		return "???"
	}
}
