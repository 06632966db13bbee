// ============================================================================
// devconsole - Developer Console
// ============================================================================
//
// Package:     console
// Description: Input history, host bridge and log capture
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

// History keeps the most recent entered lines for up/down recall
type History struct {
	entries []string
	limit   int
	index   int    // -1 = not navigating
	current string // input saved when navigation started
}

// NewHistory creates a history holding at most limit entries
func NewHistory(limit int) *History {
	return &History{limit: limit, index: -1}
}

// Add appends line, skipping immediate repeats, and ends navigation
func (h *History) Add(line string) {
	h.index = -1
	if h.limit <= 0 || line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Len returns the number of stored entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the stored lines, oldest first
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Prev moves to the previous (older) entry. input is the text currently
// typed; it is restored when navigating past the newest entry.
func (h *History) Prev(input string) (string, bool) {
	if len(h.entries) == 0 {
		return input, false
	}
	switch {
	case h.index == -1:
		h.current = input
		h.index = len(h.entries) - 1
	case h.index > 0:
		h.index--
	}
	return h.entries[h.index], true
}

// Next moves to the next (newer) entry
func (h *History) Next() (string, bool) {
	if h.index == -1 {
		return "", false
	}
	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}
	h.index = -1
	return h.current, true
}

// Host receives clear and exit requests from the built-in commands while
// a command runs and hands them to the model afterwards
type Host struct {
	mu    sync.Mutex
	clear bool
	exit  bool
}

// NewHost creates a host bridge
func NewHost() *Host {
	return &Host{}
}

// Clear requests the scrollback to be cleared
func (h *Host) Clear() {
	h.mu.Lock()
	h.clear = true
	h.mu.Unlock()
}

// Exit requests the console to quit
func (h *Host) Exit() {
	h.mu.Lock()
	h.exit = true
	h.mu.Unlock()
}

func (h *Host) take() (doClear, doExit bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	doClear, doExit = h.clear, h.exit
	h.clear, h.exit = false, false
	return doClear, doExit
}

// DefaultCaptureBuffer is the number of log lines buffered for the model
const DefaultCaptureBuffer = 256

// Capture is an io.Writer for loggers whose lines are mirrored into the
// scrollback. Lines are dropped while the buffer is full.
type Capture struct {
	lines  chan string
	writer *mdwlog.LineWriter
}

// NewCapture creates a capture buffering up to size lines
func NewCapture(size int) *Capture {
	if size <= 0 {
		size = DefaultCaptureBuffer
	}
	c := &Capture{lines: make(chan string, size)}
	c.writer = mdwlog.NewLineWriter(c.emit)
	return c
}

// Write implements io.Writer
func (c *Capture) Write(p []byte) (int, error) {
	return c.writer.Write(p)
}

func (c *Capture) emit(line string) {
	select {
	case c.lines <- line:
	default:
	}
}

// wait returns a command delivering the next captured line
func (c *Capture) wait() tea.Cmd {
	return func() tea.Msg {
		return logLineMsg(<-c.lines)
	}
}
