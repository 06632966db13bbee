// ============================================================================
// devconsole - Developer Console
// ============================================================================
//
// Package:     console
// Description: Main Bubbletea model for the developer console
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/dispatch"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// Config holds the console settings
type Config struct {
	Title          string
	Prompt         string
	HistorySize    int
	ScrollbackSize int
	MaxInputLength int
	CommandTimeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Title:          "Console",
		Prompt:         "$ ",
		HistorySize:    20,
		ScrollbackSize: 1000,
		MaxInputLength: 4096,
		CommandTimeout: 30 * time.Second,
	}
}

// Options wires the model to its collaborators
type Options struct {
	Config     Config
	Dispatcher *dispatch.Dispatcher
	// Host receives clear and exit requests; it must be the host the
	// built-in commands were registered with
	Host *Host
	// Capture, when set, mirrors log lines into the scrollback
	Capture *Capture
}

// Model is the main Bubbletea model for the console
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	busy     bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Console state
	scrollback  []Line
	suggestions []string
	history     *History

	// Collaborators
	dispatcher *dispatch.Dispatcher
	host       *Host
	capture    *Capture
	cfg        Config
}

// New creates a new console model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "type a command, 'help' lists all"
	if cfg.MaxInputLength > 0 {
		ti.CharLimit = cfg.MaxInputLength
	}
	ti.Focus()

	return Model{
		input:      ti,
		history:    NewHistory(cfg.HistorySize),
		dispatcher: opts.Dispatcher,
		host:       opts.Host,
		capture:    opts.Capture,
		cfg:        cfg,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.capture != nil {
		cmds = append(cmds, m.capture.wait())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 1 // Title bar
		footerHeight := 3 // Suggestions + input + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.cfg.Prompt) - 1
		m.updateViewportContent()
		return m, nil

	case commandDoneMsg:
		m.busy = false
		if msg.clear {
			m.scrollback = nil
		}
		m.appendLines(LineOutput, msg.lines...)
		if msg.exit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case logLineMsg:
		m.appendLines(LineLog, string(msg))
		if m.capture != nil {
			return m, m.capture.wait()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		if line, ok := m.history.Prev(m.input.Value()); ok {
			m.setInput(line)
		}
		return m, nil

	case tea.KeyDown:
		if line, ok := m.history.Next(); ok {
			m.setInput(line)
		}
		return m, nil

	case tea.KeyTab:
		m.complete()
		return m, nil

	case tea.KeyCtrlL:
		m.scrollback = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

// submit echoes the input line and starts executing it
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	line := m.input.Value()
	m.input.Reset()
	m.suggestions = nil

	if stringx.IsBlank(line) {
		m.appendLines(LineOutput, "")
		return m, nil
	}

	m.appendLines(LineEcho, m.cfg.Prompt+line)
	m.history.Add(line)

	if m.dispatcher == nil {
		return m, nil
	}
	m.busy = true
	return m, m.execute(line)
}

// execute runs line on the dispatcher outside the event loop
func (m Model) execute(line string) tea.Cmd {
	d := m.dispatcher
	host := m.host
	timeout := m.cfg.CommandTimeout

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var buf command.Buffer
		result := d.Submit(ctx, line, &buf)

		done := commandDoneMsg{lines: buf.Lines, result: result}
		if host != nil {
			done.clear, done.exit = host.take()
		}
		return done
	}
}

// complete applies tab completion to the input line. A single candidate
// replaces the word under the cursor, several extend it to their common
// prefix.
func (m *Model) complete() {
	if m.dispatcher == nil {
		return
	}
	value := m.input.Value()
	c := m.dispatcher.Registry().Complete(value)

	switch {
	case c.Empty():
		return
	case len(c.Candidates) == 1:
		m.setInput(c.Apply(value, c.Candidates[0]) + " ")
	default:
		if common := c.Common(); len(common) > len(c.Word) {
			m.setInput(c.Apply(value, common))
		}
	}
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.refreshSuggestions()
}

func (m *Model) refreshSuggestions() {
	value := m.input.Value()
	if m.dispatcher == nil || stringx.IsBlank(value) {
		m.suggestions = nil
		return
	}
	m.suggestions = m.dispatcher.Registry().Complete(value).Candidates
}

// appendLines adds lines to the scrollback, dropping the oldest beyond
// the configured size
func (m *Model) appendLines(kind LineKind, lines ...string) {
	for _, l := range lines {
		m.scrollback = append(m.scrollback, Line{Kind: kind, Text: l})
	}
	if limit := m.cfg.ScrollbackSize; limit > 0 && len(m.scrollback) > limit {
		m.scrollback = append([]Line(nil), m.scrollback[len(m.scrollback)-limit:]...)
	}
	m.updateViewportContent()
}

// updateViewportContent re-renders the scrollback into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	rendered := make([]string, len(m.scrollback))
	for i, l := range m.scrollback {
		rendered[i] = RenderLine(l)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading console..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderSuggestions())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render(m.cfg.Title)
	info := ""
	if m.dispatcher != nil {
		info = HelpDescStyle.Render(fmt.Sprintf("  %d commands", m.dispatcher.Registry().Len()))
	}
	return TitleBarStyle.Width(m.width).Render(title + info)
}

func (m Model) renderSuggestions() string {
	if m.busy {
		return BusyStyle.Render("running...")
	}
	if len(m.suggestions) == 0 {
		return ""
	}
	parts := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		if i == 0 {
			parts[i] = SelectedSuggestionStyle.Render(s)
		} else {
			parts[i] = SuggestionStyle.Render(s)
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderHelpItem("enter", "run"),
		RenderHelpItem("tab", "complete"),
		RenderHelpItem("↑/↓", "history"),
		RenderHelpItem("pgup/pgdn", "scroll"),
		RenderHelpItem("ctrl+l", "clear"),
		RenderHelpItem("esc", "quit"),
	}
	return strings.Join(items, "  ")
}

// Scrollback returns a copy of the scrollback lines
func (m Model) Scrollback() []Line {
	return append([]Line(nil), m.scrollback...)
}

// Input returns the current input line
func (m Model) Input() string {
	return m.input.Value()
}

// Suggestions returns the completion candidates shown below the input
func (m Model) Suggestions() []string {
	return append([]string(nil), m.suggestions...)
}

// Busy reports whether a command is executing
func (m Model) Busy() bool {
	return m.busy
}

// History returns the input history
func (m Model) History() *History {
	return m.history
}

// Run starts the console in the alternate screen and blocks until it quits
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
