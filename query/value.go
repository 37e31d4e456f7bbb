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

package query

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"

	"rivaas.dev/forgejo/wiretext"
)

// TimeLayout is the timestamp format the remote service parses: UTC, second
// precision, literal trailing Z.
const TimeLayout = "2006-01-02T15:04:05Z"

// ErrUnsupportedType is reported for values with no rendering rule.
var ErrUnsupportedType = errors.New("unsupported query value type")

// Scalar is the set of types [Of] and [Opt] accept.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string | ~bool | time.Time
}

// Character is a rune rendered as the character itself rather than its code
// point. Use it for struct fields and with [Of].
type Character rune

// Value is a rendered query value. The zero Value is absent.
type Value struct {
	text    string
	present bool
	err     error
}

// Text returns the rendered text and whether the value is present.
func (v Value) Text() (string, bool) {
	return v.text, v.present
}

// String returns the rendered text, empty when absent.
func (v Value) String() string {
	return v.text
}

// Err returns the error raised while rendering, if any.
func (v Value) Err() error {
	return v.err
}

func present(text string) Value {
	return Value{text: text, present: true}
}

func failed(err error) Value {
	return Value{err: err}
}

// Absent returns a value that produces no fragment.
func Absent() Value {
	return Value{}
}

// Int renders a signed integer.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) Value {
	return present(cast.ToString(int64(v)))
}

// Uint renders an unsigned integer.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) Value {
	return present(cast.ToString(uint64(v)))
}

// Float renders a floating point number in its shortest exact form.
func Float[T ~float32 | ~float64](v T) Value {
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		return present(cast.ToString(float32(v)))
	}

	return present(cast.ToString(float64(v)))
}

// String renders a string as is.
func String[T ~string](v T) Value {
	return present(string(v))
}

// Bool renders "true" or "false".
func Bool[T ~bool](v T) Value {
	return present(cast.ToString(bool(v)))
}

// Char renders a single character.
func Char(r rune) Value {
	return present(string(r))
}

// Time renders t in UTC with [TimeLayout]. Offsets are converted, never
// rejected.
func Time(t time.Time) Value {
	return present(t.UTC().Format(TimeLayout))
}

// Text renders an encoding.TextMarshaler, typically an enumeration. A nil
// marshaler or an absent nullable renders as absent.
func Text(m encoding.TextMarshaler) Value {
	if m == nil {
		return Absent()
	}
	if rv := reflect.ValueOf(m); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Absent()
	}
	if n, ok := m.(interface{ IsNull() bool }); ok && n.IsNull() {
		return Absent()
	}

	b, err := m.MarshalText()
	if err != nil {
		return failed(err)
	}

	return present(string(b))
}

// Of renders any [Scalar].
func Of[V Scalar](v V) Value {
	return Any(v)
}

// Opt renders *p, or absent for a nil pointer.
func Opt[V Scalar](p *V) Value {
	if p == nil {
		return Absent()
	}

	return Any(*p)
}

// Any renders a value chosen at run time. Unsupported types yield a value
// carrying [ErrUnsupportedType].
func Any(v any) Value {
	switch x := v.(type) {
	case nil:
		return Absent()
	case Value:
		return x
	case time.Time:
		return Time(x)
	case Character:
		return Char(rune(x))
	}

	return formatValue(reflect.ValueOf(v))
}

var (
	timeType          = reflect.TypeFor[time.Time]()
	characterType     = reflect.TypeFor[Character]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// formatValue applies the rendering rules to a reflected value. Registered
// enumerations are rendered through their wiretext codec.
func formatValue(rv reflect.Value) Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent()
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Absent()
	}

	t := rv.Type()
	if codec, ok := wiretext.Lookup(t); ok {
		text, ok, err := codec.EncodeValue(rv.Interface())
		switch {
		case err != nil:
			return failed(err)
		case !ok:
			return Absent()
		}
		return present(text)
	}

	switch t {
	case timeType:
		return Time(rv.Interface().(time.Time))
	case characterType:
		return Char(rune(rv.Int()))
	}

	if t.Implements(textMarshalerType) {
		return Text(rv.Interface().(encoding.TextMarshaler))
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return present(cast.ToString(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return present(cast.ToString(rv.Uint()))
	case reflect.Float32:
		return present(cast.ToString(float32(rv.Float())))
	case reflect.Float64:
		return present(cast.ToString(rv.Float()))
	case reflect.String:
		return present(rv.String())
	case reflect.Bool:
		return present(cast.ToString(rv.Bool()))
	}

	return failed(fmt.Errorf("%w: %s", ErrUnsupportedType, t))
}

// supported reports whether formatValue has a rule for t.
func supported(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if wiretext.Classify(t) != wiretext.KindOther || t == timeType || t == characterType {
		return true
	}
	if t.Implements(textMarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String, reflect.Bool:
		return true
	}

	return false
}
