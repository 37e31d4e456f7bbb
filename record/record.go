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

package record

import (
	"fmt"
	"reflect"
)

// codec is one serialization format.
type codec interface {
	marshal(v any) ([]byte, error)
	unmarshal(data []byte, out any, cfg *config) error
}

var codecs = map[Format]codec{
	FormatJSON:    jsonCodec{},
	FormatYAML:    yamlCodec{},
	FormatTOML:    tomlCodec{},
	FormatMsgPack: msgpackCodec{},
	FormatCBOR:    cborCodec{},
}

func codecFor(f Format) (codec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	return c, nil
}

// Marshal encodes v in format f.
//
// Example:
//
//	data, err := record.Marshal(record.FormatCBOR, status)
func Marshal(f Format, v any) ([]byte, error) {
	c, err := codecFor(f)
	if err != nil {
		return nil, &Error{Format: f, Op: OpMarshal, Err: err}
	}

	data, err := c.marshal(v)
	if err != nil {
		return nil, &Error{Format: f, Op: OpMarshal, Err: err}
	}

	return data, nil
}

// Unmarshal decodes data in format f into out, which must be a non-nil
// pointer.
//
// Example:
//
//	var issue api.Issue
//	err := record.Unmarshal(record.FormatJSON, body, &issue, record.WithDisallowUnknown())
func Unmarshal(f Format, data []byte, out any, opts ...Option) error {
	if rv := reflect.ValueOf(out); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &Error{Format: f, Op: OpUnmarshal, Err: ErrNilTarget}
	}

	c, err := codecFor(f)
	if err != nil {
		return &Error{Format: f, Op: OpUnmarshal, Err: err}
	}

	cfg := applyOptions(opts)
	if err := c.unmarshal(data, out, cfg); err != nil {
		return &Error{Format: f, Op: OpUnmarshal, Err: err}
	}

	if cfg.validator != nil {
		if err := cfg.validator.Validate(out); err != nil {
			return &Error{Format: f, Op: OpValidate, Err: err}
		}
	}

	return nil
}

// Decode decodes data in format f into a new T.
//
// Example:
//
//	hook, err := record.Decode[api.Hook](record.FormatMsgPack, data)
func Decode[T any](f Format, data []byte, opts ...Option) (T, error) {
	var result T
	if err := Unmarshal(f, data, &result, opts...); err != nil {
		return result, err
	}

	return result, nil
}
