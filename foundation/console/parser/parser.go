// File: parser.go
// Title: Console Command-Line Splitter
// Description: Splits an input line into a command name and its classified
//              argument literals. ParseValueList and SplitCommandLine are
//              pure functions; Parser wraps them with an input length limit
//              and debug logging for hosts that want it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial splitter implementation

package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/msto63/devconsole/foundation/console/literal"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// CommandLine is the result of splitting one input line. Args are views
// into Input.
type CommandLine struct {
	Input    string
	Name     string
	NameSpan literal.Span
	Args     []literal.View
}

// Owned copies the arguments out of the input line
func (c *CommandLine) Owned() []literal.Owned {
	return literal.OwnAll(c.Input, c.Args)
}

// ArgText returns the raw text following the command name
func (c *CommandLine) ArgText() string {
	if c.NameSpan.End >= len(c.Input) {
		return ""
	}
	return c.Input[c.NameSpan.End:]
}

// ParseValueList lexes a whitespace separated list of literals. Empty or
// blank input yields an empty list.
func ParseValueList(input string) ([]literal.View, error) {
	return NewLexer(input).Tokenize()
}

// SplitCommandLine isolates the leading command name and lexes the rest of
// the line as arguments
func SplitCommandLine(input string) (*CommandLine, error) {
	// Surrounding whitespace, including a trailing line break, is ignored
	end := len(input)
	for end > 0 && isSpace(input[end-1]) {
		end--
	}
	i := 0
	for i < end && isSpace(input[i]) {
		i++
	}

	if i >= end || !isIdentStart(input[i]) {
		return nil, newParseError(input, i, "no command name found")
	}

	start := i
	for i < end && isIdentChar(input[i]) {
		i++
	}
	if i < end && !isBlank(input[i]) {
		r, _ := utf8.DecodeRuneInString(input[i:])
		return nil, newParseError(input, i, "unexpected character %q after command name", r)
	}

	args, err := newLexerAt(input[:end], i).Tokenize()
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Input = input
		}
		return nil, err
	}

	return &CommandLine{
		Input:    input,
		Name:     input[start:i],
		NameSpan: literal.Span{Start: start, End: i},
		Args:     args,
	}, nil
}

// Parser applies an input length limit and logs parse results
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithName("console-parser"),
		options: opts,
	}
}

// Split splits one input line, see SplitCommandLine
func (p *Parser) Split(input string) (*CommandLine, error) {
	if err := p.checkLength(input); err != nil {
		return nil, err
	}

	line, err := SplitCommandLine(input)
	if err != nil {
		p.logger.Debug("Command line rejected", mdwlog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Trace("Command line split", mdwlog.Fields{
		"command": line.Name,
		"args":    len(line.Args),
	})
	return line, nil
}

// Values lexes an argument list, see ParseValueList
func (p *Parser) Values(input string) ([]literal.View, error) {
	if err := p.checkLength(input); err != nil {
		return nil, err
	}
	return ParseValueList(input)
}

func (p *Parser) checkLength(input string) error {
	if len(input) > p.options.MaxInputLength {
		return &ParseError{
			Input:   input,
			Offset:  p.options.MaxInputLength,
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d", len(input), p.options.MaxInputLength),
		}
	}
	return nil
}
