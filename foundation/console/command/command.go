// File: command.go
// Title: Executable Commands
// Description: Binds a schema to a typed handler, producing a Command the
//              registry can store without knowing the argument type. Also
//              defines the reply protocol handlers use to write console
//              output lines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Typed handler binding and reply protocol

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/msto63/devconsole/foundation/console/literal"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// Output consumes console output lines
type Output interface {
	Print(line string)
}

// OutputFunc adapts a function to Output
type OutputFunc func(line string)

// Print implements Output
func (f OutputFunc) Print(line string) {
	f(line)
}

// Buffer is an Output that collects lines in memory
type Buffer struct {
	Lines []string
}

// Print implements Output
func (b *Buffer) Print(line string) {
	b.Lines = append(b.Lines, line)
}

// String returns the collected lines joined by newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines, "\n")
}

// Status lines printed after a command finishes
const (
	StatusOk     = "[ok]"
	StatusFailed = "[failed]"
)

// Reply writes a handler's output lines
type Reply struct {
	out Output
}

// NewReply creates a reply writing to out
func NewReply(out Output) *Reply {
	return &Reply{out: out}
}

// Reply prints msg; embedded newlines produce several lines
func (r *Reply) Reply(msg string) {
	for _, line := range stringx.SplitLines(msg) {
		r.out.Print(line)
	}
}

// Replyf prints a formatted message
func (r *Reply) Replyf(format string, args ...interface{}) {
	r.Reply(fmt.Sprintf(format, args...))
}

// Ok prints the success status line
func (r *Reply) Ok() {
	r.out.Print(StatusOk)
}

// Failed prints the failure status line
func (r *Reply) Failed() {
	r.out.Print(StatusFailed)
}

// ReplyOk prints msg followed by the success status line
func (r *Reply) ReplyOk(msg string) {
	r.Reply(msg)
	r.Ok()
}

// ReplyFailed prints msg followed by the failure status line
func (r *Reply) ReplyFailed(msg string) {
	r.Reply(msg)
	r.Failed()
}

// Handler runs a command with decoded arguments
type Handler[T any] func(ctx context.Context, args T, r *Reply) error

// Command is a registered, executable console command
type Command interface {
	Info() Info
	// Run decodes args and invokes the handler. Decode failures are returned
	// as *decode.Error, handler failures wrapped in *RunError.
	Run(ctx context.Context, args []literal.Owned, r *Reply) error
}

// RunError wraps an error returned by a command handler
type RunError struct {
	Command string
	Err     error
}

// Error implements the error interface
func (e *RunError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the handler's error
func (e *RunError) Unwrap() error {
	return e.Err
}

type boundCommand[T any] struct {
	schema  *Schema[T]
	handler Handler[T]
}

// Bind pairs a schema with its handler
func Bind[T any](schema *Schema[T], handler Handler[T]) Command {
	return &boundCommand[T]{schema: schema, handler: handler}
}

// New defines a schema and binds handler in one step
func New[T any](name, description string, handler Handler[T], fields ...Field[T]) (Command, error) {
	schema, err := Define(name, description, fields...)
	if err != nil {
		return nil, err
	}
	return Bind(schema, handler), nil
}

// NoArgs is the argument type of commands without arguments
type NoArgs struct{}

// Simple creates a command that takes no arguments
func Simple(name, description string, run func(ctx context.Context, r *Reply) error) (Command, error) {
	return New[NoArgs](name, description, func(ctx context.Context, _ NoArgs, r *Reply) error {
		return run(ctx, r)
	})
}

func (b *boundCommand[T]) Info() Info {
	return b.schema.Info()
}

func (b *boundCommand[T]) Run(ctx context.Context, args []literal.Owned, r *Reply) error {
	v, err := b.schema.Decode(args)
	if err != nil {
		return err
	}
	if err := b.handler(ctx, v, r); err != nil {
		return &RunError{Command: b.schema.info.Name, Err: err}
	}
	return nil
}
