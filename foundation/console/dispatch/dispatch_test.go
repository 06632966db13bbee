// File: dispatch_test.go
// Title: Console Dispatcher Tests
// Description: Tests line execution, error rendering, raw listeners and
//              result reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/literal"
	"github.com/msto63/devconsole/foundation/console/registry"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

type logArgs struct {
	Msg string
	Num *int64
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *logArgs) {
	t.Helper()
	reg := registry.New(registry.Options{Logger: mdwlog.Discard()})

	got := &logArgs{}
	logCmd, err := command.New("log", "Prints given arguments to the console",
		func(ctx context.Context, a logArgs, r *command.Reply) error {
			*got = a
			n := int64(1)
			if a.Num != nil {
				n = *a.Num
			}
			for i := int64(0); i < n; i++ {
				r.Reply(a.Msg)
			}
			r.Ok()
			return nil
		},
		command.Arg("msg", "message", decode.String(), func(a *logArgs, v string) { a.Msg = v }),
		command.Arg("num", "repeat count", decode.Optional(decode.Int[int64]()), func(a *logArgs, v *int64) { a.Num = v }),
	)
	if err != nil {
		t.Fatalf("New(log) error = %v", err)
	}

	failCmd, err := command.Simple("fail", "always fails", func(ctx context.Context, r *command.Reply) error {
		return errors.New("disk on fire")
	})
	if err != nil {
		t.Fatalf("Simple(fail) error = %v", err)
	}
	limitCmd, err := command.Simple("limit", "fails with a range error", func(ctx context.Context, r *command.Reply) error {
		return decode.ValueTooLarge(0, 10)
	})
	if err != nil {
		t.Fatalf("Simple(limit) error = %v", err)
	}
	reg.MustRegister(logCmd, failCmd, limitCmd)

	d, err := New(Options{Logger: mdwlog.Discard(), Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d, got
}

func TestNew_RequiresRegistry(t *testing.T) {
	_, err := New(Options{Logger: mdwlog.Discard()})
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("New() error = %v, want CodeMissingConfig", err)
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		status Status
		output []string
	}{
		{
			name:   "success",
			line:   `log "hello world" 2`,
			status: StatusOk,
			output: []string{"hello world", "hello world", "[ok]"},
		},
		{
			name:   "optional omitted",
			line:   "log hi",
			status: StatusOk,
			output: []string{"hi", "[ok]"},
		},
		{
			name:   "blank line",
			line:   "   ",
			status: StatusIgnored,
			output: nil,
		},
		{
			name:   "parse error",
			line:   `log "oops`,
			status: StatusParseError,
			output: []string{"[error] invalid command: unterminated string (column 5)"},
		},
		{
			name:   "unknown command with suggestion",
			line:   "lgo hi",
			status: StatusUnknownCommand,
			output: []string{"[error] unknown command 'lgo'", "did you mean: log?"},
		},
		{
			name:   "unknown command without suggestion",
			line:   "zzzzzzzz",
			status: StatusUnknownCommand,
			output: []string{"[error] unknown command 'zzzzzzzz'"},
		},
		{
			name:   "decode error prints help",
			line:   "log hi ten",
			status: StatusDecodeError,
			output: []string{
				"[error] expected 'int' but got 'string' for arg #2",
				"Prints given arguments to the console",
				"Usage: log <msg> [num]",
				"  msg <string>  message",
				"  num <int64>   repeat count",
			},
		},
		{
			name:   "handler error",
			line:   "fail",
			status: StatusFailed,
			output: []string{"[error] disk on fire", "[failed]"},
		},
		{
			name:   "handler returning decode error",
			line:   "limit",
			status: StatusFailed,
			output: []string{"[error] number is too large for arg #1 (max 10)", "[failed]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDispatcher(t)
			var buf command.Buffer

			res := d.Submit(context.Background(), tt.line, &buf)
			if res.Status != tt.status {
				t.Errorf("Submit(%q).Status = %v, want %v", tt.line, res.Status, tt.status)
			}
			if strings.Join(buf.Lines, "\n") != strings.Join(tt.output, "\n") {
				t.Errorf("Submit(%q) output =\n%s\nwant\n%s", tt.line, buf.String(), strings.Join(tt.output, "\n"))
			}
			if res.Success() != (tt.status == StatusOk || tt.status == StatusIgnored) {
				t.Errorf("Success() = %v for status %v", res.Success(), res.Status)
			}
		})
	}
}

func TestSubmit_DecodedArgs(t *testing.T) {
	d, got := newTestDispatcher(t)

	res := d.Submit(context.Background(), "log hello 3", &command.Buffer{})
	if res.Err != nil {
		t.Fatalf("Submit() error = %v", res.Err)
	}
	if got.Msg != "hello" || got.Num == nil || *got.Num != 3 {
		t.Errorf("handler args = %+v", got)
	}
	if res.ID == uuid.Nil || res.Name != "log" {
		t.Errorf("Result = %+v", res)
	}
}

func TestSubmit_ErrorKinds(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res := d.Submit(context.Background(), "log", &command.Buffer{})
	if !decode.IsNotEnoughArgs(res.Err) {
		t.Errorf("Err = %v, want not enough args", res.Err)
	}

	res = d.Submit(context.Background(), "nope", &command.Buffer{})
	if !mdwerror.HasCode(res.Err, mdwerror.CodeNotFound) {
		t.Errorf("Err = %v, want CodeNotFound", res.Err)
	}

	res = d.Submit(context.Background(), "fail", &command.Buffer{})
	var runErr *command.RunError
	if !errors.As(res.Err, &runErr) || runErr.Command != "fail" {
		t.Errorf("Err = %v, want *command.RunError", res.Err)
	}

	res = d.Submit(context.Background(), "limit", &command.Buffer{})
	if !errors.As(res.Err, &runErr) || runErr.Command != "limit" || !decode.IsOutOfRange(res.Err) {
		t.Errorf("Err = %v, want *command.RunError wrapping a range error", res.Err)
	}
}

func TestSubmit_LogsFailures(t *testing.T) {
	base, _ := newTestDispatcher(t)
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Format: mdwlog.FormatJSON, Output: &buf})
	d, err := New(Options{Logger: logger, Registry: base.Registry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d.Submit(context.Background(), "fail", &command.Buffer{})

	for _, want := range []string{
		`"message":"Console command failed"`,
		`"logger":"console-dispatch"`,
		`"command":"fail"`,
		`"line":"fail"`,
		`"status":"failed"`,
		`"error":"disk on fire"`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output = %s, want it to contain %s", buf.String(), want)
		}
	}
}

func TestSubmit_MaxInputLength(t *testing.T) {
	reg := registry.New(registry.Options{Logger: mdwlog.Discard()})
	d, err := New(Options{Logger: mdwlog.Discard(), Registry: reg, MaxInputLength: 8})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf command.Buffer
	res := d.Submit(context.Background(), "log 123456789", &buf)
	if res.Status != StatusParseError {
		t.Errorf("Status = %v, want %v", res.Status, StatusParseError)
	}
	if len(buf.Lines) != 1 || !strings.HasPrefix(buf.Lines[0], "[error] invalid command: input exceeds maximum length") {
		t.Errorf("output = %q", buf.Lines)
	}
}

func TestOnEntered(t *testing.T) {
	d, _ := newTestDispatcher(t)

	var events []Entered
	d.OnEntered(func(ctx context.Context, ev Entered) bool {
		events = append(events, ev)
		return ev.Name == "echo_raw"
	})

	var buf command.Buffer
	res := d.Submit(context.Background(), `echo_raw "a b" 1 2.5 true`, &buf)
	if res.Status != StatusHandled {
		t.Errorf("Status = %v, want %v", res.Status, StatusHandled)
	}
	if len(buf.Lines) != 0 {
		t.Errorf("handled line produced output %q", buf.Lines)
	}

	d.Submit(context.Background(), "log hi", &command.Buffer{})
	d.Submit(context.Background(), `log "bad`, &command.Buffer{})

	if len(events) != 2 {
		t.Fatalf("listener saw %d events, want 2", len(events))
	}

	ev := events[0]
	want := []literal.Owned{
		literal.String("a b"),
		literal.Int(1, "1"),
		literal.Float(2.5, "2.5"),
		literal.Bool(true, "true"),
	}
	if ev.Name != "echo_raw" || len(ev.Args) != len(want) {
		t.Fatalf("event = %+v", ev)
	}
	for i := range want {
		if ev.Args[i].Kind != want[i].Kind || ev.Args[i].Value() != want[i].Value() {
			t.Errorf("Args[%d] = %#v, want %#v", i, ev.Args[i], want[i])
		}
	}
	if ev.ID == uuid.Nil || ev.ID == events[1].ID {
		t.Error("events do not carry distinct request ids")
	}
	if events[1].Name != "log" || events[1].Line != "log hi" {
		t.Errorf("second event = %+v", events[1])
	}
}

func TestStatus_String(t *testing.T) {
	if StatusDecodeError.String() != "decode_error" {
		t.Errorf("String() = %q", StatusDecodeError.String())
	}
	if Status(99).String() != "unknown" {
		t.Errorf("String() = %q", Status(99).String())
	}
}
