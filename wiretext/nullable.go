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
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Nullable holds an enumeration value that may be absent on the wire.
// The zero value is absent.
type Nullable[E comparable] struct {
	Value E
	Valid bool
}

// Some returns a present value.
func Some[E comparable](v E) Nullable[E] {
	return Nullable[E]{Value: v, Valid: true}
}

// None returns the absent value.
func None[E comparable]() Nullable[E] {
	return Nullable[E]{}
}

// FromPtr returns None for nil and Some(*p) otherwise.
func FromPtr[E comparable](p *E) Nullable[E] {
	if p == nil {
		return None[E]()
	}

	return Some(*p)
}

// Ptr returns nil when absent.
func (n Nullable[E]) Ptr() *E {
	if !n.Valid {
		return nil
	}
	v := n.Value

	return &v
}

// Get returns the value and whether it is present.
func (n Nullable[E]) Get() (E, bool) {
	return n.Value, n.Valid
}

// IsNull reports whether the value is absent.
func (n Nullable[E]) IsNull() bool {
	return !n.Valid
}

var jsonNull = []byte("null")

// MarshalJSON encodes the absent state as null.
func (n Nullable[E]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}

	return json.Marshal(n.Value)
}

// UnmarshalJSON decodes null, an empty string or a blank string as absent.
func (n *Nullable[E]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*n = None[E]()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && isBlank(s) {
		*n = None[E]()
		return nil
	}

	var v E
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)

	return nil
}

// MarshalText encodes the absent state as empty text, for formats that
// have no null literal in text position.
func (n Nullable[E]) MarshalText() ([]byte, error) {
	if !n.Valid {
		return []byte{}, nil
	}
	if m, ok := any(n.Value).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}

	return fmt.Appendf(nil, "%v", n.Value), nil
}

// UnmarshalText decodes empty or blank text as absent.
func (n *Nullable[E]) UnmarshalText(text []byte) error {
	if isBlank(string(text)) {
		*n = None[E]()
		return nil
	}

	var v E
	u, ok := any(&v).(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("wiretext: %T does not implement encoding.TextUnmarshaler", v)
	}
	if err := u.UnmarshalText(text); err != nil {
		return err
	}
	*n = Some(v)

	return nil
}

// MarshalYAML encodes the absent state as a YAML null.
func (n Nullable[E]) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.Value, nil
}

// UnmarshalYAML decodes a YAML null or a blank scalar as absent.
func (n *Nullable[E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && (node.ShortTag() == "!!null" || isBlank(node.Value)) {
		*n = None[E]()
		return nil
	}

	var v E
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = Some(v)

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
