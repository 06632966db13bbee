// File: builtin_test.go
// Title: Built-in Console Command Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package builtin

import (
	"context"
	"strings"
	"testing"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/literal"
	"github.com/msto63/devconsole/foundation/console/registry"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

type fakeHost struct {
	cleared int
	exited  int
}

func (h *fakeHost) Clear() { h.cleared++ }
func (h *fakeHost) Exit()  { h.exited++ }

func setup(t *testing.T) (*registry.Registry, *fakeHost) {
	t.Helper()
	reg := registry.New(registry.Options{Logger: mdwlog.Discard()})
	host := &fakeHost{}
	if err := Register(reg, host); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	type volumeArgs struct{ Level int }
	vol, err := command.New("volume", "Sets the volume",
		func(ctx context.Context, a volumeArgs, r *command.Reply) error { return nil },
		command.Arg("level", "new level", decode.Int[int](), func(a *volumeArgs, v int) { a.Level = v }),
	)
	if err != nil {
		t.Fatalf("New(volume) error = %v", err)
	}
	reg.MustRegister(vol)
	return reg, host
}

func run(t *testing.T, reg *registry.Registry, name string, args ...string) string {
	t.Helper()
	cmd, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("command %q not registered", name)
	}

	lits := make([]literal.Owned, 0, len(args))
	for _, a := range args {
		lits = append(lits, literal.String(a))
	}

	var buf command.Buffer
	if err := cmd.Run(context.Background(), lits, command.NewReply(&buf)); err != nil {
		t.Fatalf("Run(%s) error = %v", name, err)
	}
	return buf.String()
}

func TestHelp_List(t *testing.T) {
	reg, _ := setup(t)

	want := strings.Join([]string{
		"Available commands:",
		"  clear  - Clears the console",
		"  exit   - Exits the app",
		"  help   - Prints available commands and their usage",
		"  volume - Sets the volume",
		"",
	}, "\n")
	if got := run(t, reg, "help"); got != want {
		t.Errorf("help output =\n%s\nwant\n%s", got, want)
	}
}

func TestHelp_Command(t *testing.T) {
	reg, _ := setup(t)

	want := "Sets the volume\nUsage: volume <level>\n  level <int>  new level"
	if got := run(t, reg, "help", "volume"); got != want {
		t.Errorf("help volume =\n%s\nwant\n%s", got, want)
	}

	if got := run(t, reg, "help", "nope"); got != "Command 'nope' does not exist" {
		t.Errorf("help nope = %q", got)
	}

	if err := reg.RegisterAlias("vol", "volume"); err != nil {
		t.Fatalf("RegisterAlias() error = %v", err)
	}
	if got := run(t, reg, "help", "vol"); got != want {
		t.Errorf("help vol = %q", got)
	}
}

func TestClearAndExit(t *testing.T) {
	reg, host := setup(t)

	if got := run(t, reg, "clear"); got != "" {
		t.Errorf("clear output = %q, want none", got)
	}
	if host.cleared != 1 {
		t.Errorf("Clear() called %d times, want 1", host.cleared)
	}

	if got := run(t, reg, "exit"); got != "[ok]" {
		t.Errorf("exit output = %q, want [ok]", got)
	}
	if host.exited != 1 {
		t.Errorf("Exit() called %d times, want 1", host.exited)
	}
}

func TestRegister_Twice(t *testing.T) {
	reg, _ := setup(t)
	err := Register(reg, nil)
	if !mdwerror.HasCode(err, mdwerror.CodeDuplicateCommand) {
		t.Errorf("Register() error = %v, want CodeDuplicateCommand", err)
	}
}

func TestHostFuncs(t *testing.T) {
	var cleared bool
	h := HostFuncs{OnClear: func() { cleared = true }}
	h.Clear()
	h.Exit()
	if !cleared {
		t.Error("OnClear not called")
	}
}
