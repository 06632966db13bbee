// File: builtin.go
// Title: Built-in Console Commands
// Description: The help, clear and exit commands every console carries.
//              clear and exit act on the host through the Host interface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: help, clear and exit

// Package builtin registers the commands available in every console.
package builtin

import (
	"context"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// Host is the application hosting the console
type Host interface {
	// Clear empties the scrollback
	Clear()
	// Exit asks the application to quit
	Exit()
}

// HostFuncs adapts two functions to Host. Nil functions are no-ops.
type HostFuncs struct {
	OnClear func()
	OnExit  func()
}

// Clear implements Host
func (h HostFuncs) Clear() {
	if h.OnClear != nil {
		h.OnClear()
	}
}

// Exit implements Host
func (h HostFuncs) Exit() {
	if h.OnExit != nil {
		h.OnExit()
	}
}

type helpArgs struct {
	Command *string
}

// Help creates the help command listing the commands of reg
func Help(reg *registry.Registry) (command.Command, error) {
	return command.New("help", "Prints available commands and their usage",
		func(ctx context.Context, a helpArgs, r *command.Reply) error {
			if a.Command == nil {
				listCommands(reg, r)
				return nil
			}
			cmd, ok := reg.Lookup(*a.Command)
			if !ok {
				r.Replyf("Command '%s' does not exist", *a.Command)
				return nil
			}
			r.Reply(cmd.Info().HelpText())
			return nil
		},
		command.Arg("command", "Help for a given command", decode.Optional(decode.String()),
			func(a *helpArgs, v *string) { a.Command = v }),
	)
}

func listCommands(reg *registry.Registry, r *command.Reply) {
	infos := reg.Infos()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	width := stringx.MaxWidth(names...)

	r.Reply("Available commands:")
	for _, info := range infos {
		line := "  " + stringx.PadRight(info.Name, width, ' ')
		if stringx.IsNotBlank(info.Description) {
			line += " - " + info.Description
		}
		r.Reply(line)
	}
	r.Reply("")
}

// Clear creates the clear command
func Clear(host Host) (command.Command, error) {
	return command.Simple("clear", "Clears the console", func(ctx context.Context, r *command.Reply) error {
		host.Clear()
		return nil
	})
}

// Exit creates the exit command
func Exit(host Host) (command.Command, error) {
	return command.Simple("exit", "Exits the app", func(ctx context.Context, r *command.Reply) error {
		host.Exit()
		r.Ok()
		return nil
	})
}

// Register adds help, clear and exit to reg
func Register(reg *registry.Registry, host Host) error {
	if host == nil {
		host = HostFuncs{}
	}

	helpCmd, err := Help(reg)
	if err != nil {
		return err
	}
	clearCmd, err := Clear(host)
	if err != nil {
		return err
	}
	exitCmd, err := Exit(host)
	if err != nil {
		return err
	}

	for _, cmd := range []command.Command{helpCmd, clearCmd, exitCmd} {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
