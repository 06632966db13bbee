// ============================================================================
// devconsole - Developer Console
// ============================================================================
//
// Package:     demo
// Description: Example commands registered by the devconsole CLI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package demo provides example commands showing typed arguments, optional
// arguments, enumerated values, variadic arguments and raw listeners.
package demo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/dispatch"
	"github.com/msto63/devconsole/foundation/console/literal"
	"github.com/msto63/devconsole/foundation/console/registry"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

// RawCommand is the name handled by the raw listener instead of a schema
const RawCommand = "echo_raw"

// Channels lists the mixer channels accepted by the volume command
var Channels = []string{"master", "music", "effects"}

// DefaultVolume is the initial level of every channel
const DefaultVolume uint8 = 80

// Mixer holds the volume levels changed by the volume command
type Mixer struct {
	mu     sync.RWMutex
	levels map[string]uint8
}

// NewMixer creates a mixer with every channel at DefaultVolume
func NewMixer() *Mixer {
	m := &Mixer{levels: make(map[string]uint8, len(Channels))}
	for _, ch := range Channels {
		m.levels[ch] = DefaultVolume
	}
	return m
}

// Level returns the level of channel
func (m *Mixer) Level(channel string) uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.levels[channel]
}

// SetLevel changes the level of channel
func (m *Mixer) SetLevel(channel string, level uint8) {
	m.mu.Lock()
	m.levels[channel] = level
	m.mu.Unlock()
}

type logArgs struct {
	Msg string
	Num *int64
}

// Log creates the log command printing a message num times
func Log() (command.Command, error) {
	return command.New("log", "Prints given arguments to the console",
		func(ctx context.Context, a logArgs, r *command.Reply) error {
			n := int64(1)
			if a.Num != nil {
				n = *a.Num
			}
			for i := int64(0); i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r.Reply(a.Msg)
			}
			r.Ok()
			return nil
		},
		command.Arg("msg", "Message to print", decode.String(), func(a *logArgs, v string) { a.Msg = v }),
		command.Arg("num", "Number of times to print message", decode.Optional(decode.Int[int64]()),
			func(a *logArgs, v *int64) { a.Num = v }),
	)
}

type addArgs struct {
	Numbers []float64
}

// Add creates the add command summing its arguments
func Add() (command.Command, error) {
	return command.New("add", "Adds numbers",
		func(ctx context.Context, a addArgs, r *command.Reply) error {
			var sum float64
			terms := make([]string, len(a.Numbers))
			for i, n := range a.Numbers {
				sum += n
				terms[i] = fmt.Sprintf("%g", n)
			}
			if len(terms) == 0 {
				terms = []string{"0"}
			}
			r.ReplyOk(fmt.Sprintf("%s = %g", strings.Join(terms, " + "), sum))
			return nil
		},
		command.Rest("numbers", "Numbers to add", decode.Float64(), func(a *addArgs, v []float64) { a.Numbers = v }),
	)
}

type volumeArgs struct {
	Channel string
	Level   *uint8
}

// Volume creates the volume command reading or setting a mixer channel
func Volume(mixer *Mixer) (command.Command, error) {
	return command.New("volume", "Shows or sets the volume of a channel",
		func(ctx context.Context, a volumeArgs, r *command.Reply) error {
			if a.Level == nil {
				r.ReplyOk(fmt.Sprintf("%s volume is %d", a.Channel, mixer.Level(a.Channel)))
				return nil
			}
			if *a.Level > 100 {
				r.ReplyFailed(fmt.Sprintf("volume %d is out of range (0-100)", *a.Level))
				return nil
			}
			mixer.SetLevel(a.Channel, *a.Level)
			r.ReplyOk(fmt.Sprintf("%s volume set to %d", a.Channel, *a.Level))
			return nil
		},
		command.Arg("channel", "Mixer channel", decode.OneOf(Channels...), func(a *volumeArgs, v string) { a.Channel = v }),
		command.Arg("level", "New level, 0-100", decode.Optional(decode.Int[uint8]()),
			func(a *volumeArgs, v *uint8) { a.Level = v }),
	)
}

type customArgs struct {
	Variant string
}

// Custom creates a command taking one enumerated argument
func Custom() (command.Command, error) {
	return command.New("custom", "Replies with the chosen variant",
		func(ctx context.Context, a customArgs, r *command.Reply) error {
			r.ReplyOk(a.Variant + "!")
			return nil
		},
		command.Arg("variant", "Variant to reply with", decode.OneOf("foo", "bar", "zoo"),
			func(a *customArgs, v string) { a.Variant = v }),
	)
}

type echoArgs struct {
	Values []literal.Value
}

// Echo creates the echo command printing each argument with its kind
func Echo() (command.Command, error) {
	return command.New("echo", "Prints each argument with its type",
		func(ctx context.Context, a echoArgs, r *command.Reply) error {
			for i, v := range a.Values {
				r.Replyf("#%d %s %s", i+1, v.Kind, v)
			}
			r.Ok()
			return nil
		},
		command.Rest("values", "Values to print", decode.Value(), func(a *echoArgs, v []literal.Value) { a.Values = v }),
	)
}

// RawListener returns a dispatcher listener logging every entered line and
// handling RawCommand without a registered schema
func RawListener(logger *mdwlog.Logger) dispatch.Listener {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithField("component", "console-demo")

	return func(ctx context.Context, ev dispatch.Entered) bool {
		if ev.Name != RawCommand {
			return false
		}
		args := make([]string, len(ev.Args))
		for i, a := range ev.Args {
			args[i] = a.GoString()
		}
		logger.Info(fmt.Sprintf("Entered command %q", ev.Name), mdwlog.Fields{
			"requestID": ev.ID.String(),
			"args":      "[" + strings.Join(args, ", ") + "]",
		})
		return true
	}
}

// Register adds the demo commands with their argument suggestions and
// aliases to reg
func Register(reg *registry.Registry, mixer *Mixer) error {
	if mixer == nil {
		mixer = NewMixer()
	}

	logCmd, err := Log()
	if err != nil {
		return err
	}
	addCmd, err := Add()
	if err != nil {
		return err
	}
	volumeCmd, err := Volume(mixer)
	if err != nil {
		return err
	}
	customCmd, err := Custom()
	if err != nil {
		return err
	}
	echoCmd, err := Echo()
	if err != nil {
		return err
	}

	for _, cmd := range []command.Command{logCmd, addCmd, echoCmd} {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	if err := reg.RegisterWithSuggestions(volumeCmd, Channels, []string{"0", "25", "50", "75", "100"}); err != nil {
		return err
	}
	if err := reg.RegisterWithSuggestions(customCmd, []string{"foo", "bar", "zoo"}); err != nil {
		return err
	}

	aliases := map[string]string{
		"print": "log",
		"sum":   "add",
		"vol":   "volume",
	}
	for alias, name := range aliases {
		if err := reg.RegisterAlias(alias, name); err != nil {
			return err
		}
	}
	return nil
}
