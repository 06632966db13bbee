// File: help.go
// Title: Command Usage and Help Text
// Description: Command metadata and its rendering as usage line and help
//              text for the console.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package command

import (
	"fmt"
	"strings"

	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// ArgInfo describes one declared argument
type ArgInfo struct {
	Name        string
	Type        string
	Optional    bool
	Variadic    bool
	Description string
}

// Info describes a command for help output and completion
type Info struct {
	Name        string
	Description string
	Args        []ArgInfo
}

func (i Info) clone() Info {
	i.Args = append([]ArgInfo(nil), i.Args...)
	return i
}

// placeholder renders an argument as <name>, [name] or [name...]
func (a ArgInfo) placeholder() string {
	switch {
	case a.Variadic:
		return "[" + a.Name + "...]"
	case a.Optional:
		return "[" + a.Name + "]"
	default:
		return "<" + a.Name + ">"
	}
}

// Usage returns the usage line, e.g. "Usage: log <msg> [num]"
func (i Info) Usage() string {
	parts := make([]string, 0, len(i.Args)+2)
	parts = append(parts, "Usage:", i.Name)
	for _, a := range i.Args {
		parts = append(parts, a.placeholder())
	}
	return strings.Join(parts, " ")
}

// HelpLines returns the description, the usage line and an aligned table
// of the arguments
func (i Info) HelpLines() []string {
	var lines []string
	if stringx.IsNotBlank(i.Description) {
		lines = append(lines, i.Description)
	}
	lines = append(lines, i.Usage())

	if len(i.Args) == 0 {
		return lines
	}

	labels := make([]string, len(i.Args))
	for n, a := range i.Args {
		labels[n] = fmt.Sprintf("%s <%s>", a.Name, a.Type)
	}
	width := stringx.MaxWidth(labels...)

	for n, a := range i.Args {
		line := "  " + stringx.PadRight(labels[n], width, ' ')
		if a.Description != "" {
			line += "  " + a.Description
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// HelpText joins HelpLines with newlines
func (i Info) HelpText() string {
	return strings.Join(i.HelpLines(), "\n")
}

// MinArgs returns the number of required arguments
func (i Info) MinArgs() int {
	n := 0
	for _, a := range i.Args {
		if !a.Optional {
			n++
		}
	}
	return n
}
