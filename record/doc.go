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

// Package record encodes and decodes API records in the serialization
// formats the client speaks: JSON, YAML, TOML, MessagePack and CBOR.
//
// Enumeration fields travel as their wire text in every format. JSON, YAML,
// TOML and CBOR reach the wiretext codecs through encoding.TextMarshaler;
// MessagePack gets explicit encoder and decoder functions for every type
// registered with wiretext. Unknown literals abort decoding with a
// *wiretext.DecodeError wrapped in an [*Error].
//
// Example:
//
//	data, err := record.Marshal(record.FormatYAML, pr)
//	if err != nil {
//	    return err
//	}
//
//	pr, err = record.Decode[api.PullRequest](record.FormatYAML, data)
package record
