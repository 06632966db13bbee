// File: values.go
// Title: Built-in Argument Decoders
// Description: Decoders for the argument types commands commonly declare:
//              strings, signed and unsigned integers of every width, floats,
//              booleans, enumerated choices and raw literals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial decoder set

package decode

import (
	"math"
	"reflect"
	"strings"

	"github.com/msto63/devconsole/foundation/console/literal"
)

// StringDecoder accepts any literal. Non-string literals yield their raw
// source text, so 007 stays "007".
type StringDecoder struct{}

// String returns the string decoder
func String() StringDecoder {
	return StringDecoder{}
}

func (StringDecoder) TypeName() string { return "string" }

func (StringDecoder) DecodeOne(lit literal.Owned, arg int) (string, error) {
	return lit.Text(), nil
}

// Integer is the set of integer types an IntDecoder can target
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntDecoder accepts only integer literals and range-checks them against T
type IntDecoder[T Integer] struct {
	name string
	min  int64
	max  uint64
}

// Int returns a decoder for the integer type T
func Int[T Integer]() IntDecoder[T] {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	d := IntDecoder[T]{name: reflect.TypeOf(zero).Name()}

	if ^T(0) < 0 {
		// signed
		if bits == 64 {
			d.min, d.max = math.MinInt64, math.MaxInt64
		} else {
			d.min = -(int64(1) << (bits - 1))
			d.max = uint64(1)<<(bits-1) - 1
		}
	} else {
		d.min = 0
		if bits == 64 {
			d.max = math.MaxUint64
		} else {
			d.max = uint64(1)<<bits - 1
		}
	}
	return d
}

func (d IntDecoder[T]) TypeName() string { return d.name }

// Min returns the smallest accepted value
func (d IntDecoder[T]) Min() int64 { return d.min }

// Max returns the largest accepted value
func (d IntDecoder[T]) Max() uint64 { return d.max }

func (d IntDecoder[T]) DecodeOne(lit literal.Owned, arg int) (T, error) {
	if lit.Kind != literal.KindInt {
		return 0, UnexpectedArgType(arg, literal.KindInt, lit.Kind)
	}
	if lit.Int < d.min {
		return 0, ValueTooSmall(arg, d.min)
	}
	if lit.Int > 0 && uint64(lit.Int) > d.max {
		return 0, ValueTooLarge(arg, d.max)
	}
	return T(lit.Int), nil
}

// FloatDecoder accepts float literals and widens integer literals
type FloatDecoder[T ~float32 | ~float64] struct {
	name string
}

// Float returns a decoder for the float type T
func Float[T ~float32 | ~float64]() FloatDecoder[T] {
	var zero T
	return FloatDecoder[T]{name: reflect.TypeOf(zero).Name()}
}

// Float64 returns the float64 decoder
func Float64() FloatDecoder[float64] {
	return Float[float64]()
}

func (d FloatDecoder[T]) TypeName() string { return d.name }

func (d FloatDecoder[T]) DecodeOne(lit literal.Owned, arg int) (T, error) {
	var f float64
	switch lit.Kind {
	case literal.KindFloat:
		f = lit.Float
	case literal.KindInt:
		f = float64(lit.Int)
	default:
		return 0, UnexpectedArgType(arg, literal.KindFloat, lit.Kind)
	}

	v := T(f)
	if !math.IsInf(f, 0) && math.IsInf(float64(v), 0) {
		if f < 0 {
			return 0, FloatTooSmall(arg, -math.MaxFloat32)
		}
		return 0, FloatTooLarge(arg, math.MaxFloat32)
	}
	return v, nil
}

// BoolDecoder accepts only boolean literals; 0 and 1 lex as integers and
// are rejected
type BoolDecoder struct{}

// Bool returns the boolean decoder
func Bool() BoolDecoder {
	return BoolDecoder{}
}

func (BoolDecoder) TypeName() string { return "bool" }

func (BoolDecoder) DecodeOne(lit literal.Owned, arg int) (bool, error) {
	if lit.Kind != literal.KindBool {
		return false, UnexpectedArgType(arg, literal.KindBool, lit.Kind)
	}
	return lit.Bool, nil
}

// ValueDecoder accepts any literal and erases its spelling
type ValueDecoder struct{}

// Value returns the erased value decoder
func Value() ValueDecoder {
	return ValueDecoder{}
}

func (ValueDecoder) TypeName() string { return "value" }

func (ValueDecoder) DecodeOne(lit literal.Owned, arg int) (literal.Value, error) {
	return lit.Value(), nil
}

// RawDecoder accepts any literal unchanged
type RawDecoder struct{}

// Raw returns the pass-through decoder
func Raw() RawDecoder {
	return RawDecoder{}
}

func (RawDecoder) TypeName() string { return "value" }

func (RawDecoder) DecodeOne(lit literal.Owned, arg int) (literal.Owned, error) {
	return lit, nil
}

// ChoiceDecoder accepts a string literal equal to one of its choices
type ChoiceDecoder struct {
	choices []string
}

// OneOf returns a decoder restricted to the given choices
func OneOf(choices ...string) ChoiceDecoder {
	return ChoiceDecoder{choices: append([]string(nil), choices...)}
}

// Choices returns the accepted values in declaration order
func (d ChoiceDecoder) Choices() []string {
	return append([]string(nil), d.choices...)
}

func (d ChoiceDecoder) TypeName() string {
	return strings.Join(d.choices, "|")
}

func (d ChoiceDecoder) DecodeOne(lit literal.Owned, arg int) (string, error) {
	if lit.Kind != literal.KindString {
		return "", UnexpectedArgType(arg, literal.KindString, lit.Kind)
	}
	for _, c := range d.choices {
		if lit.Str == c {
			return c, nil
		}
	}
	return "", Customf("invalid value '%s' for arg #%d (expected one of: %s)",
		lit.Str, arg+1, strings.Join(d.choices, ", "))
}
