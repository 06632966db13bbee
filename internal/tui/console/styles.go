// ============================================================================
// devconsole - Developer Console
// ============================================================================
//
// Package:     console
// Description: Styles for the console TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitleBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Scrollback styles
var (
	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	OkStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LogLineStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SelectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	BusyStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)
)

// Help bar styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RenderLine styles one scrollback line by its kind
func RenderLine(l Line) string {
	switch l.Kind {
	case LineEcho:
		return EchoStyle.Render(l.Text)
	case LineLog:
		return LogLineStyle.Render(l.Text)
	}

	switch {
	case strings.HasPrefix(l.Text, "[error]"):
		return ErrorStyle.Render(l.Text)
	case l.Text == "[ok]":
		return OkStyle.Render(l.Text)
	case l.Text == "[failed]":
		return FailedStyle.Render(l.Text)
	default:
		return OutputStyle.Render(l.Text)
	}
}

// RenderHelpItem renders a key binding hint
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
