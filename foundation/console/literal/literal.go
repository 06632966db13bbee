// File: literal.go
// Title: Classified Argument Literals
// Description: Defines the literal values produced by the console lexer. A
//              literal is either a view into the parsed input (raw text kept
//              as a byte span) or an owned copy that can outlive the input
//              line, plus an erased value without any source spelling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial literal model

package literal

import (
	"fmt"
	"strconv"
)

// Kind classifies a literal
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the user-facing name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) into a parsed input
type Span struct {
	Start int
	End   int
}

// Text returns the part of src covered by the span
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

// Len returns the byte length of the span
func (s Span) Len() int {
	return s.End - s.Start
}

// View is a literal as produced by the lexer. Its raw text is not stored;
// Raw points into the input that was parsed and is only meaningful together
// with that input.
type View struct {
	Kind  Kind
	Str   string // decoded text, KindString only
	Int   int64
	Float float64
	Bool  bool
	Raw   Span
}

// RawText returns the source spelling of the literal
func (v View) RawText(src string) string {
	return v.Raw.Text(src)
}

// Own copies the literal out of src. The result no longer depends on the
// input buffer.
func (v View) Own(src string) Owned {
	return Owned{
		Kind:  v.Kind,
		Str:   v.Str,
		Int:   v.Int,
		Float: v.Float,
		Bool:  v.Bool,
		Raw:   string([]byte(v.Raw.Text(src))),
	}
}

// Value drops the source spelling
func (v View) Value() Value {
	return Value{Kind: v.Kind, Str: v.Str, Int: v.Int, Float: v.Float, Bool: v.Bool}
}

// OwnAll converts a sequence of views parsed from src, preserving order
func OwnAll(src string, views []View) []Owned {
	if len(views) == 0 {
		return nil
	}
	owned := make([]Owned, len(views))
	for i, v := range views {
		owned[i] = v.Own(src)
	}
	return owned
}

// Owned is a literal that carries its own copy of the raw text
type Owned struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Raw   string
}

// String constructs an owned string literal
func String(s string) Owned {
	return Owned{Kind: KindString, Str: s, Raw: s}
}

// Int constructs an owned integer literal. An empty raw spelling defaults
// to the decimal form of n.
func Int(n int64, raw string) Owned {
	if raw == "" {
		raw = strconv.FormatInt(n, 10)
	}
	return Owned{Kind: KindInt, Int: n, Raw: raw}
}

// Float constructs an owned float literal
func Float(f float64, raw string) Owned {
	if raw == "" {
		raw = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return Owned{Kind: KindFloat, Float: f, Raw: raw}
}

// Bool constructs an owned boolean literal
func Bool(b bool, raw string) Owned {
	if raw == "" {
		raw = strconv.FormatBool(b)
	}
	return Owned{Kind: KindBool, Bool: b, Raw: raw}
}

// Value drops the source spelling
func (o Owned) Value() Value {
	return Value{Kind: o.Kind, Str: o.Str, Int: o.Int, Float: o.Float, Bool: o.Bool}
}

// Text returns the literal as the user typed it. String literals yield
// their decoded text, every other kind its raw spelling.
func (o Owned) Text() string {
	if o.Kind == KindString {
		return o.Str
	}
	return o.Raw
}

// GoString renders the literal for debugging, e.g. Int(10, "10")
func (o Owned) GoString() string {
	switch o.Kind {
	case KindString:
		return fmt.Sprintf("Str(%q)", o.Str)
	case KindInt:
		return fmt.Sprintf("Int(%d, %q)", o.Int, o.Raw)
	case KindFloat:
		return fmt.Sprintf("Float(%g, %q)", o.Float, o.Raw)
	case KindBool:
		return fmt.Sprintf("Bool(%t, %q)", o.Bool, o.Raw)
	default:
		return "Unknown()"
	}
}

// Value is a literal reduced to its semantic value
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// Interface returns the value as a plain Go value (string, int64, float64
// or bool)
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	default:
		return v.Str
	}
}

// String formats the value canonically; the original spelling is lost
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
