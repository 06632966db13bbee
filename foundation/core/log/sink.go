// File: sink.go
// Title: Line Sink
// Description: An io.Writer that splits formatted log output into lines and
//              hands each complete line to a callback. Used to mirror log
//              output into a console scrollback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"bytes"
	"sync"
)

// LineWriter buffers partial writes and emits complete lines
type LineWriter struct {
	mu   sync.Mutex
	buf  []byte
	emit func(line string)
}

// NewLineWriter creates a LineWriter calling emit for every line, without
// its trailing newline
func NewLineWriter(emit func(line string)) *LineWriter {
	return &LineWriter{emit: emit}
}

// Write implements io.Writer
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.buf = append(w.buf, p...)

	var lines []string
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(bytes.TrimRight(w.buf[:i], "\r")))
		w.buf = w.buf[i+1:]
	}
	w.mu.Unlock()

	// emit outside the lock; callbacks may log themselves
	for _, line := range lines {
		w.emit(line)
	}
	return len(p), nil
}

// Flush emits any buffered partial line
func (w *LineWriter) Flush() {
	w.mu.Lock()
	rest := string(w.buf)
	w.buf = nil
	w.mu.Unlock()

	if rest != "" {
		w.emit(rest)
	}
}
