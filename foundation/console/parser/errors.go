// File: errors.go
// Title: Console Parse Errors
// Description: Positioned lexical errors of the console parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ParseError describes why an input line could not be lexed
type ParseError struct {
	Input   string // Input that failed
	Offset  int    // Byte offset of the failure
	Message string // Error description
}

func newParseError(input string, offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Input:   input,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

// Column returns the 1-based character column of the failure
func (e *ParseError) Column() int {
	offset := e.Offset
	if offset > len(e.Input) {
		offset = len(e.Input)
	}
	return utf8.RuneCountInString(e.Input[:offset]) + 1
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command: %s (column %d)", e.Message, e.Column())
}

// Line renders the error as a single console output line
func (e *ParseError) Line() string {
	return "[error] " + e.Error()
}

// IsParseError reports whether err is or wraps a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
