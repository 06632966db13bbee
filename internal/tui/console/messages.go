// ============================================================================
// devconsole - Developer Console
// ============================================================================
//
// Package:     console
// Description: Message types for async operations in the console
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"github.com/msto63/devconsole/foundation/console/dispatch"
)

// LineKind tells scrollback lines apart for styling
type LineKind int

const (
	// LineOutput is printed by a command or the dispatcher
	LineOutput LineKind = iota
	// LineEcho repeats an entered line after the prompt
	LineEcho
	// LineLog is a captured log entry
	LineLog
)

// Line is one scrollback entry
type Line struct {
	Kind LineKind
	Text string
}

// commandDoneMsg is sent when a submitted line finished executing
type commandDoneMsg struct {
	lines  []string
	result *dispatch.Result
	clear  bool
	exit   bool
}

// logLineMsg carries one captured log line
type logLineMsg string
