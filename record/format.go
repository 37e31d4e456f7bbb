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

import "rivaas.dev/forgejo/wiretext"

// Format names a serialization format. The zero Format is invalid.
type Format uint8

// Supported formats.
const (
	FormatJSON Format = iota + 1
	FormatYAML
	FormatTOML
	FormatMsgPack
	FormatCBOR
)

var formats = wiretext.Register(
	wiretext.Member[Format]{Value: FormatJSON, Name: "json"},
	wiretext.Member[Format]{Value: FormatYAML, Name: "yaml"},
	wiretext.Member[Format]{Value: FormatTOML, Name: "toml"},
	wiretext.Member[Format]{Value: FormatMsgPack, Name: "msgpack"},
	wiretext.Member[Format]{Value: FormatCBOR, Name: "cbor"},
)

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	return formats.Decode(s)
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return formats.Members()
}

func (f Format) String() string                    { return formats.Encode(f) }
func (f Format) MarshalText() ([]byte, error)      { return formats.MarshalText(f) }
func (f *Format) UnmarshalText(text []byte) error { return formats.UnmarshalText(f, text) }
