// File: errors.go
// Title: Argument Decode Errors
// Description: Value-type errors returned when classified literals cannot be
//              decoded into typed command arguments. Argument indexes are
//              0-based internally and rendered 1-based for users.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial decode error taxonomy

package decode

import (
	"errors"
	"fmt"

	"github.com/msto63/devconsole/foundation/console/literal"
)

// ErrorKind identifies the decode failure
type ErrorKind int

const (
	KindNotEnoughArgs ErrorKind = iota
	KindUnexpectedArgType
	KindValueTooLarge
	KindValueTooSmall
	KindTooManyArgs
	KindCustom
)

// String returns a readable kind name
func (k ErrorKind) String() string {
	switch k {
	case KindNotEnoughArgs:
		return "not_enough_args"
	case KindUnexpectedArgType:
		return "unexpected_arg_type"
	case KindValueTooLarge:
		return "value_too_large"
	case KindValueTooSmall:
		return "value_too_small"
	case KindTooManyArgs:
		return "too_many_args"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Error is a decode failure. Only the fields relevant to Kind are set.
type Error struct {
	Kind     ErrorKind
	Arg      int          // 0-based argument index
	Expected literal.Kind // KindUnexpectedArgType
	Received literal.Kind // KindUnexpectedArgType
	Min      int64        // KindValueTooSmall
	Max      uint64       // KindValueTooLarge, KindTooManyArgs
	Message  string       // KindCustom

	// FloatBound is the violated bound of a float target; zero for integers
	FloatBound float64
}

// NotEnoughArgs reports an exhausted cursor at argument arg
func NotEnoughArgs(arg int) *Error {
	return &Error{Kind: KindNotEnoughArgs, Arg: arg}
}

// UnexpectedArgType reports a literal of the wrong classification
func UnexpectedArgType(arg int, expected, received literal.Kind) *Error {
	return &Error{Kind: KindUnexpectedArgType, Arg: arg, Expected: expected, Received: received}
}

// ValueTooLarge reports an integer above the target type's maximum
func ValueTooLarge(arg int, max uint64) *Error {
	return &Error{Kind: KindValueTooLarge, Arg: arg, Max: max}
}

// ValueTooSmall reports an integer below the target type's minimum
func ValueTooSmall(arg int, min int64) *Error {
	return &Error{Kind: KindValueTooSmall, Arg: arg, Min: min}
}

// FloatTooLarge reports a float above the target type's maximum
func FloatTooLarge(arg int, max float64) *Error {
	return &Error{Kind: KindValueTooLarge, Arg: arg, FloatBound: max}
}

// FloatTooSmall reports a float below the target type's lowest value
func FloatTooSmall(arg int, min float64) *Error {
	return &Error{Kind: KindValueTooSmall, Arg: arg, FloatBound: min}
}

// TooManyArgs reports leftover literals; max is the number of arguments
// the command accepts
func TooManyArgs(arg int, max int) *Error {
	return &Error{Kind: KindTooManyArgs, Arg: arg, Max: uint64(max)}
}

// Customf creates an error with a free-form message
func Customf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCustom, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotEnoughArgs:
		return "not enough arguments provided"
	case KindUnexpectedArgType:
		return fmt.Sprintf("expected '%s' but got '%s' for arg #%d", e.Expected, e.Received, e.Arg+1)
	case KindValueTooLarge:
		if e.FloatBound != 0 {
			return fmt.Sprintf("number is too large for arg #%d (max %g)", e.Arg+1, e.FloatBound)
		}
		return fmt.Sprintf("number is too large for arg #%d (max %d)", e.Arg+1, e.Max)
	case KindValueTooSmall:
		if e.FloatBound != 0 {
			return fmt.Sprintf("number is too small for arg #%d (min %g)", e.Arg+1, e.FloatBound)
		}
		return fmt.Sprintf("number is too small for arg #%d (min %d)", e.Arg+1, e.Min)
	case KindTooManyArgs:
		return fmt.Sprintf("too many arguments provided, arg #%d is unexpected (max %d)", e.Arg+1, e.Max)
	default:
		return e.Message
	}
}

// Line renders the error as a single console output line
func (e *Error) Line() string {
	return "[error] " + e.Error()
}

// Is matches errors of the same kind, so errors.Is(err, NotEnoughArgs(0))
// holds for any argument index
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the decode error kind of err, if err is a decode error
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// IsNotEnoughArgs reports whether err is a missing argument failure
func IsNotEnoughArgs(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotEnoughArgs
}

// IsUnexpectedArgType reports whether err is a type mismatch
func IsUnexpectedArgType(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnexpectedArgType
}

// IsOutOfRange reports whether err is a numeric range failure
func IsOutOfRange(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == KindValueTooLarge || kind == KindValueTooSmall)
}
