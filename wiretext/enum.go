// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wiretext

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"sync/atomic"
)

// Enum is the codec for one registered enumeration type. It is returned by
// [Register] and is safe for concurrent use.
type Enum[E comparable] struct {
	reg     *Registry
	typ     reflect.Type
	members []Member[E]
	built   atomic.Pointer[table[E]]
}

// table returns the text table, building and publishing it on first use.
// Racing builders produce equivalent tables; the first one stored wins.
func (e *Enum[E]) table() *table[E] {
	if t := e.built.Load(); t != nil {
		return t
	}

	t := buildTable(e.members)
	if e.built.CompareAndSwap(nil, t) {
		e.reg.tableBuilt(e.typ, len(e.members))
		return t
	}

	return e.built.Load()
}

// Decode resolves text to a member, ignoring case. Both a member's override
// text and its declared name are accepted.
func (e *Enum[E]) Decode(text string) (E, error) {
	if v, ok := e.table().lookup(text); ok {
		return v, nil
	}

	e.reg.unknownLiteral(e.typ, text)
	var zero E

	return zero, &DecodeError{Type: e.typ, Literal: text, Err: ErrUnknownLiteral}
}

// Text returns the wire text of v and whether v is a declared member.
func (e *Enum[E]) Text(v E) (string, bool) {
	s, ok := e.table().forward[v]
	return s, ok
}

// Encode returns the wire text of v. A value that is not a declared member
// encodes to its underlying Go representation.
func (e *Enum[E]) Encode(v E) string {
	if s, ok := e.Text(v); ok {
		return s
	}

	s := fallbackText(v)
	e.reg.encodeFallback(e.typ, s)

	return s
}

// MarshalText implements the body of an encoding.TextMarshaler for E.
// With [WithStrictEncode], undeclared values fail with [ErrUndeclaredMember].
func (e *Enum[E]) MarshalText(v E) ([]byte, error) {
	if s, ok := e.Text(v); ok {
		return []byte(s), nil
	}
	if e.reg.opts.StrictEncode {
		return nil, fmt.Errorf("wiretext: %w: %s(%s)", ErrUndeclaredMember, e.typ, fallbackText(v))
	}

	return []byte(e.Encode(v)), nil
}

// UnmarshalText implements the body of an encoding.TextUnmarshaler for E.
// dst is left untouched on error.
func (e *Enum[E]) UnmarshalText(dst *E, text []byte) error {
	v, err := e.Decode(string(text))
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

// DecodeNullable decodes text into a [Nullable]. Empty or blank text yields
// the absent state without consulting the table.
func (e *Enum[E]) DecodeNullable(text string) (Nullable[E], error) {
	if isBlank(text) {
		return None[E](), nil
	}

	v, err := e.Decode(text)
	if err != nil {
		return None[E](), err
	}

	return Some(v), nil
}

// EncodeNullable returns the wire text of n, or false for the absent state.
func (e *Enum[E]) EncodeNullable(n Nullable[E]) (string, bool) {
	if !n.Valid {
		return "", false
	}

	return e.Encode(n.Value), true
}

// Members returns the declared values in declaration order.
func (e *Enum[E]) Members() []E {
	out := make([]E, len(e.members))
	for i, m := range e.members {
		out[i] = m.Value
	}

	return out
}

// Type returns the enumeration type.
func (e *Enum[E]) Type() reflect.Type { return e.typ }

// Kind returns [KindEnum].
func (e *Enum[E]) Kind() Kind { return KindEnum }

// Name returns the qualified type name.
func (e *Enum[E]) Name() string { return e.typ.String() }

// Texts returns the wire texts in declaration order.
func (e *Enum[E]) Texts() []string { return slices.Clone(e.table().texts) }

// DecodeString implements [Codec].
func (e *Enum[E]) DecodeString(text string) (any, error) {
	v, err := e.Decode(text)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// DecodeNull implements [Codec]. A plain enumeration has no absent state.
func (e *Enum[E]) DecodeNull() (any, error) {
	e.reg.unknownLiteral(e.typ, "null")
	return nil, &DecodeError{Type: e.typ, Literal: "null", Err: ErrUnknownLiteral}
}

// EncodeValue implements [Codec].
func (e *Enum[E]) EncodeValue(v any) (string, bool, error) {
	ev, ok := v.(E)
	if !ok {
		return "", false, fmt.Errorf("wiretext: %w: got %T, want %s", ErrTypeMismatch, v, e.typ)
	}

	b, err := e.MarshalText(ev)
	if err != nil {
		return "", false, err
	}

	return string(b), true, nil
}

// Declared implements [Codec].
func (e *Enum[E]) Declared(v any) bool {
	ev, ok := v.(E)
	if !ok {
		return false
	}
	_, ok = e.Text(ev)

	return ok
}

// nullableCodec is the [Codec] registered for Nullable[E].
type nullableCodec[E comparable] struct {
	enum *Enum[E]
	typ  reflect.Type
}

func (n *nullableCodec[E]) Type() reflect.Type { return n.typ }
func (n *nullableCodec[E]) Kind() Kind         { return KindNullableEnum }
func (n *nullableCodec[E]) Name() string       { return n.typ.String() }
func (n *nullableCodec[E]) Texts() []string    { return n.enum.Texts() }

func (n *nullableCodec[E]) DecodeString(text string) (any, error) {
	v, err := n.enum.DecodeNullable(text)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (n *nullableCodec[E]) DecodeNull() (any, error) {
	return None[E](), nil
}

func (n *nullableCodec[E]) EncodeValue(v any) (string, bool, error) {
	var nv Nullable[E]
	switch x := v.(type) {
	case Nullable[E]:
		nv = x
	case E:
		nv = Some(x)
	case nil:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("wiretext: %w: got %T, want %s", ErrTypeMismatch, v, n.typ)
	}

	if !nv.Valid {
		return "", false, nil
	}

	return n.enum.EncodeValue(nv.Value)
}

func (n *nullableCodec[E]) Declared(v any) bool {
	nv, ok := v.(Nullable[E])
	if !ok {
		return false
	}

	return !nv.Valid || n.enum.Declared(nv.Value)
}

// fallbackText renders an undeclared value from its underlying kind. It
// must not go through fmt's Stringer handling, since enum String methods
// usually call back into Encode.
func fallbackText[E comparable](v E) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return rv.Type().String()
	}
}
