package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook buffers log entries in a channel and writes them to the configured
// writers from a dedicated goroutine so logging never blocks request handling.
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters creates an async hook writing to multiple writers.
// bufferSize is the entry buffer capacity (default 1000 when <= 0).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels returns the levels this hook handles.
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire queues the entry without blocking. When the buffer is full the entry is
// dropped and a warning goes to stderr.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil
	}

	// Entries are mutated by logrus after Fire returns; copy before queueing.
	cloned := entry.Dup()
	cloned.Level = entry.Level
	cloned.Message = entry.Message

	select {
	case h.entries <- cloned:
	default:
		fmt.Fprintf(os.Stderr, "logger: async buffer full, dropping entry: %s\n", entry.Message)
	}
	return nil
}

// processEntries drains the channel and writes formatted entries.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()
	for entry := range h.entries {
		line, err := entry.Logger.Formatter.Format(entry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: failed to format entry: %v\n", err)
			continue
		}
		for _, w := range h.writers {
			if _, err := w.Write(line); err != nil {
				fmt.Fprintf(os.Stderr, "logger: failed to write entry: %v\n", err)
			}
		}
	}
}

// Close stops the hook after flushing queued entries.
func (h *AsyncHook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
}
