// File: decode.go
// Title: Argument Decode Protocol
// Description: Defines the Decoder capability and the positional Cursor
//              shared by the field decoders of one command. Decoders are
//              stateless values; all state lives in the cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial decode protocol

package decode

import "github.com/msto63/devconsole/foundation/console/literal"

// Cursor walks a literal sequence left to right
type Cursor struct {
	lits []literal.Owned
	pos  int
}

// NewCursor creates a cursor positioned before the first literal
func NewCursor(lits []literal.Owned) *Cursor {
	return &Cursor{lits: lits}
}

// Next returns the next literal and advances. ok is false when exhausted.
func (c *Cursor) Next() (lit literal.Owned, ok bool) {
	if c.pos >= len(c.lits) {
		return literal.Owned{}, false
	}
	lit = c.lits[c.pos]
	c.pos++
	return lit, true
}

// Pos returns the index of the next literal
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread literals
func (c *Cursor) Remaining() int {
	return len(c.lits) - c.pos
}

// Decoder converts one classified literal into a T
type Decoder[T any] interface {
	// TypeName names the target type in usage and help output
	TypeName() string
	// DecodeOne converts lit, the argument at 0-based index arg
	DecodeOne(lit literal.Owned, arg int) (T, error)
}

// NextDecoder is implemented by decoders that handle cursor exhaustion
// themselves instead of failing with NotEnoughArgs
type NextDecoder[T any] interface {
	Decoder[T]
	DecodeNext(c *Cursor, arg int) (T, error)
}

// Next pulls the next literal from c and decodes it with d
func Next[T any](c *Cursor, d Decoder[T], arg int) (T, error) {
	if nd, ok := d.(NextDecoder[T]); ok {
		return nd.DecodeNext(c, arg)
	}

	lit, ok := c.Next()
	if !ok {
		var zero T
		return zero, NotEnoughArgs(arg)
	}
	return d.DecodeOne(lit, arg)
}

// All decodes every remaining literal with d
func All[T any](c *Cursor, d Decoder[T]) ([]T, error) {
	out := make([]T, 0, c.Remaining())
	for c.Remaining() > 0 {
		v, err := Next(c, d, c.Pos())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// OptionalDecoder wraps a decoder so an exhausted cursor yields nil
type OptionalDecoder[T any] struct {
	inner Decoder[T]
}

// Optional wraps d. A present literal with the wrong type still fails.
func Optional[T any](d Decoder[T]) OptionalDecoder[T] {
	return OptionalDecoder[T]{inner: d}
}

// TypeName returns the wrapped decoder's type name
func (o OptionalDecoder[T]) TypeName() string {
	return o.inner.TypeName()
}

// DecodeOne decodes a present literal
func (o OptionalDecoder[T]) DecodeOne(lit literal.Owned, arg int) (*T, error) {
	v, err := o.inner.DecodeOne(lit, arg)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeNext returns nil without error when the cursor is exhausted
func (o OptionalDecoder[T]) DecodeNext(c *Cursor, arg int) (*T, error) {
	lit, ok := c.Next()
	if !ok {
		return nil, nil
	}
	return o.DecodeOne(lit, arg)
}

// IsOptional marks the decoder as tolerating a missing argument
func (o OptionalDecoder[T]) IsOptional() bool {
	return true
}

// IsOptional reports whether d tolerates a missing argument
func IsOptional(d interface{}) bool {
	o, ok := d.(interface{ IsOptional() bool })
	return ok && o.IsOptional()
}
