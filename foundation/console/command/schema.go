// File: schema.go
// Title: Command Argument Schemas
// Description: Builder API describing how a command's arguments decode into
//              a typed struct. A schema is an ordered list of fields, each
//              with a name, a decoder, an optional flag and a description.
//              Definition fails when a required field follows an optional
//              one, so broken schemas never reach the registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial schema builder

package command

import (
	"fmt"

	"github.com/msto63/devconsole/foundation/console/decode"
	"github.com/msto63/devconsole/foundation/console/literal"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

// Field describes one positional argument of T
type Field[T any] struct {
	Name        string
	Description string
	TypeName    string
	Optional    bool
	Variadic    bool

	decode func(c *decode.Cursor, arg int, dst *T) error
}

// Rest declares a trailing field that consumes every remaining literal.
// It accepts zero literals and must be the last field.
func Rest[T, V any](name, description string, dec decode.Decoder[V], set func(*T, []V)) Field[T] {
	return Field[T]{
		Name:        name,
		Description: description,
		TypeName:    dec.TypeName(),
		Optional:    true,
		Variadic:    true,
		decode: func(c *decode.Cursor, arg int, dst *T) error {
			vs, err := decode.All(c, dec)
			if err != nil {
				return err
			}
			if set != nil {
				set(dst, vs)
			}
			return nil
		},
	}
}

// Arg declares a field decoded with dec and stored into T by set. The field
// is optional when dec tolerates a missing argument (decode.Optional).
func Arg[T, V any](name, description string, dec decode.Decoder[V], set func(*T, V)) Field[T] {
	return Field[T]{
		Name:        name,
		Description: description,
		TypeName:    dec.TypeName(),
		Optional:    decode.IsOptional(dec),
		decode: func(c *decode.Cursor, arg int, dst *T) error {
			v, err := decode.Next(c, dec, arg)
			if err != nil {
				return err
			}
			if set != nil {
				set(dst, v)
			}
			return nil
		},
	}
}

// Schema is a validated, ordered field list for argument struct T
type Schema[T any] struct {
	info   Info
	fields []Field[T]
}

// Define validates the field list and builds a schema. It rejects invalid
// command names, blank or duplicate field names and required fields that
// follow an optional field.
func Define[T any](name, description string, fields ...Field[T]) (*Schema[T], error) {
	if !IsValidName(name) {
		return nil, schemaError(name, fmt.Sprintf("invalid command name '%s'", name))
	}

	seen := make(map[string]bool, len(fields))
	firstOptional := ""
	args := make([]ArgInfo, 0, len(fields))

	for i, f := range fields {
		if f.Name == "" {
			return nil, schemaError(name, fmt.Sprintf("argument #%d has no name", i+1)).
				WithDetail("position", i+1)
		}
		if seen[f.Name] {
			return nil, schemaError(name, fmt.Sprintf("duplicate argument '%s'", f.Name)).
				WithDetail("argument", f.Name)
		}
		if f.decode == nil {
			return nil, schemaError(name, fmt.Sprintf("argument '%s' has no decoder", f.Name)).
				WithDetail("argument", f.Name)
		}
		seen[f.Name] = true

		if f.Variadic && i != len(fields)-1 {
			return nil, schemaError(name, fmt.Sprintf("variadic argument '%s' must be the last argument", f.Name)).
				WithDetail("argument", f.Name)
		}

		if f.Optional {
			if firstOptional == "" {
				firstOptional = f.Name
			}
		} else if firstOptional != "" {
			return nil, schemaError(name,
				fmt.Sprintf("required argument '%s' follows optional argument '%s'", f.Name, firstOptional)).
				WithDetail("argument", f.Name).
				WithDetail("optional", firstOptional)
		}

		args = append(args, ArgInfo{
			Name:        f.Name,
			Type:        f.TypeName,
			Optional:    f.Optional,
			Variadic:    f.Variadic,
			Description: f.Description,
		})
	}

	return &Schema[T]{
		info:   Info{Name: name, Description: description, Args: args},
		fields: append([]Field[T](nil), fields...),
	}, nil
}

// MustDefine is like Define but panics on an invalid schema. Intended for
// package-level command definitions checked at startup.
func MustDefine[T any](name, description string, fields ...Field[T]) *Schema[T] {
	s, err := Define(name, description, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func schemaError(command, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeSchemaInvalid).
		WithOperation("command.Define").
		WithDetail("command", command)
}

// Info returns the schema's metadata
func (s *Schema[T]) Info() Info {
	return s.info.clone()
}

// Decode decodes lits into a new T. Fields are decoded in declaration order
// against one shared cursor; the first failure aborts. Literals left over
// after the last field fail with TooManyArgs.
func (s *Schema[T]) Decode(lits []literal.Owned) (T, error) {
	var out T
	c := decode.NewCursor(lits)

	for i, f := range s.fields {
		if err := f.decode(c, i, &out); err != nil {
			var zero T
			return zero, err
		}
	}

	if c.Remaining() > 0 {
		var zero T
		return zero, decode.TooManyArgs(c.Pos(), len(s.fields))
	}
	return out, nil
}

// IsValidName reports whether name matches the command name grammar
// (letter or underscore, then letters, digits or underscores)
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', ch == '_':
		case '0' <= ch && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
