// File: dispatch.go
// Title: Console Command Dispatcher
// Description: Line -> Entered event -> registry lookup -> decode -> handler.
//              Each invocation carries a request id for log correlation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/literal"
	"github.com/msto63/devconsole/foundation/console/parser"
	"github.com/msto63/devconsole/foundation/console/registry"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// Options configures a dispatcher
type Options struct {
	Logger         *mdwlog.Logger
	Registry       *registry.Registry
	MaxInputLength int
}

// Entered is a successfully split command line. Args are owned copies and
// stay valid after the input buffer is reused.
type Entered struct {
	ID   uuid.UUID
	Name string
	Args []literal.Owned
	Line string
	Time time.Time
}

// Listener observes entered lines. Returning true marks the line as
// handled, which suppresses the unknown command error for names without a
// registered command.
type Listener func(ctx context.Context, ev Entered) bool

// Status classifies the outcome of one submitted line
type Status int

const (
	StatusIgnored Status = iota
	StatusOk
	StatusHandled
	StatusParseError
	StatusUnknownCommand
	StatusDecodeError
	StatusFailed
)

var statusNames = map[Status]string{
	StatusIgnored:        "ignored",
	StatusOk:             "ok",
	StatusHandled:        "handled",
	StatusParseError:     "parse_error",
	StatusUnknownCommand: "unknown_command",
	StatusDecodeError:    "decode_error",
	StatusFailed:         "failed",
}

// String returns the snake_case status name
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Result reports what happened to a submitted line
type Result struct {
	ID       uuid.UUID
	Name     string
	Status   Status
	Err      error
	Duration time.Duration
}

// Success reports whether the line ran without error
func (r *Result) Success() bool {
	switch r.Status {
	case StatusOk, StatusHandled, StatusIgnored:
		return true
	}
	return false
}

// Dispatcher executes console lines against a registry
type Dispatcher struct {
	registry  *registry.Registry
	parser    *parser.Parser
	listeners []Listener
	logger    *mdwlog.Logger
	mutex     sync.RWMutex
	options   Options
}

// New creates a dispatcher. A registry is required.
func New(opts Options) (*Dispatcher, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = parser.DefaultMaxInputLength
	}
	if opts.Registry == nil {
		return nil, mdwerror.New("registry is required").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("dispatch.New")
	}

	return &Dispatcher{
		registry: opts.Registry,
		parser: parser.New(parser.Options{
			Logger:         opts.Logger,
			MaxInputLength: opts.MaxInputLength,
		}),
		logger:  opts.Logger.WithName("console-dispatch"),
		options: opts,
	}, nil
}

// Registry returns the registry commands are looked up in
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// OnEntered subscribes l to every successfully split line
func (d *Dispatcher) OnEntered(l Listener) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.listeners = append(d.listeners, l)
}

// Submit parses and executes one input line, printing all output to out.
// Blank lines are ignored.
func (d *Dispatcher) Submit(ctx context.Context, line string, out command.Output) *Result {
	if stringx.IsBlank(line) {
		return &Result{Status: StatusIgnored}
	}

	cl, err := d.parser.Split(line)
	if err != nil {
		out.Print(errorLine(err))
		d.logger.WarnWithErr("Invalid console input", err)
		return &Result{Status: StatusParseError, Err: err}
	}

	return d.Execute(ctx, Entered{
		ID:   uuid.New(),
		Name: cl.Name,
		Args: cl.Owned(),
		Line: strings.TrimSpace(line),
		Time: time.Now(),
	}, out)
}

// maxLoggedLine caps the input echoed into log entries
const maxLoggedLine = 120

// Execute publishes ev to the listeners and runs the matching command
func (d *Dispatcher) Execute(ctx context.Context, ev Entered, out command.Output) *Result {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	start := time.Now()
	result := &Result{ID: ev.ID, Name: ev.Name}

	fields := mdwlog.Fields{
		"requestID": ev.ID.String(),
		"command":   ev.Name,
		"argCount":  len(ev.Args),
		"line":      stringx.Truncate(ev.Line, maxLoggedLine, "..."),
	}
	d.logger.Debug("Executing console command", fields)

	handled := d.publish(ctx, ev)

	cmd, ok := d.registry.Lookup(ev.Name)
	if !ok {
		result.Duration = time.Since(start)
		if handled {
			result.Status = StatusHandled
			return result
		}
		out.Print(fmt.Sprintf("[error] unknown command '%s'", ev.Name))
		if suggestions := d.registry.Suggest(ev.Name); len(suggestions) > 0 {
			out.Print(fmt.Sprintf("did you mean: %s?", strings.Join(suggestions, ", ")))
		}
		result.Status = StatusUnknownCommand
		result.Err = mdwerror.Newf("unknown command '%s'", ev.Name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("dispatch.Execute")
		d.logger.Warn("Unknown console command", fields)
		return result
	}

	err := cmd.Run(ctx, ev.Args, command.NewReply(out))
	result.Duration = time.Since(start)
	result.Err = err

	var decodeErr *decode.Error
	var runErr *command.RunError
	switch {
	case err == nil:
		result.Status = StatusOk
		d.logger.Debug("Console command completed", mdwlog.Fields{
			"requestID": ev.ID.String(),
			"duration":  result.Duration.String(),
		})
		return result

	// Handler errors first: a handler may return a *decode.Error itself
	case errors.As(err, &runErr):
		result.Status = StatusFailed
		out.Print(errorLine(runErr.Err))
		out.Print(command.StatusFailed)

	case errors.As(err, &decodeErr):
		result.Status = StatusDecodeError
		out.Print(decodeErr.Line())
		for _, line := range cmd.Info().HelpLines() {
			out.Print(line)
		}

	default:
		result.Status = StatusFailed
		out.Print(errorLine(err))
		out.Print(command.StatusFailed)
	}

	d.logger.WarnWithErr("Console command failed", err, fields.Merge(mdwlog.Fields{
		"status":   result.Status.String(),
		"duration": result.Duration.String(),
	}))
	return result
}

func (d *Dispatcher) publish(ctx context.Context, ev Entered) bool {
	d.mutex.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mutex.RUnlock()

	handled := false
	for _, l := range listeners {
		if l(ctx, ev) {
			handled = true
		}
	}
	return handled
}

// errorLine renders err as a single "[error] ..." line
func errorLine(err error) string {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Line()
	}
	var de *decode.Error
	if errors.As(err, &de) {
		return de.Line()
	}
	return "[error] " + err.Error()
}
