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

// Package wiretext maps enumerated Go values to the exact text a remote API
// expects and returns.
//
// Each enumeration is declared once, next to its type, as an ordered list of
// members. A member has a declared name and an optional override text; the
// override is what goes on the wire, while both the override and the declared
// name are accepted when decoding. Decoding is case-insensitive, encoding is
// injective.
//
// # Declaring an Enumeration
//
//	type MergeStyle int
//
//	const (
//	    MergeStyleMerge MergeStyle = iota
//	    MergeStyleRebaseMerge
//	)
//
//	var mergeStyles = wiretext.Register(
//	    wiretext.Member[MergeStyle]{Value: MergeStyleMerge, Name: "merge"},
//	    wiretext.Member[MergeStyle]{Value: MergeStyleRebaseMerge, Name: "rebase_merge", Override: "rebase-merge"},
//	)
//
//	func (s MergeStyle) MarshalText() ([]byte, error)     { return mergeStyles.MarshalText(s) }
//	func (s *MergeStyle) UnmarshalText(text []byte) error { return mergeStyles.UnmarshalText(s, text) }
//
// With those two methods in place the type round-trips through encoding/json,
// YAML, TOML, CBOR and the query package without further wiring.
//
// # Nullable Values
//
// [Nullable] wraps an enumeration whose wire value may be absent. Decoding an
// empty or blank literal yields the absent state without consulting the text
// table; encoding the absent state yields the wire's null marker.
//
// # Runtime Dispatch
//
// Marshalling code that only has a [reflect.Type] in hand uses [Classify] and
// [Lookup] to obtain a type-erased [Codec]. Lookups decline for any type that
// is neither a registered enumeration nor a [Nullable] of one, so callers fall
// back to their default handling.
//
// Text tables are built lazily on first use and cached for the lifetime of the
// process. Concurrent first use may build a table more than once; the results
// are equivalent and only one is published.
package wiretext
