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
	"strings"
	"testing"
)

// TestRegistry creates an isolated Registry for tests, so declarations do not
// leak into the process-wide default.
//
// Example:
//
//	func TestMyEnum(t *testing.T) {
//	    r := wiretext.TestRegistry(t)
//	    colors := wiretext.RegisterWith(r, members...)
//	}
func TestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	return NewRegistry(opts...)
}

// AssertRoundTrip checks that every declared member of e survives an
// encode/decode cycle, including with the wire text upper- and lower-cased.
//
// Example:
//
//	func TestStateType(t *testing.T) {
//	    wiretext.AssertRoundTrip(t, stateTypes)
//	}
func AssertRoundTrip[E comparable](t *testing.T, e *Enum[E]) {
	t.Helper()

	for _, m := range e.Members() {
		text := e.Encode(m)
		for _, variant := range []string{text, strings.ToUpper(text), strings.ToLower(text)} {
			got, err := e.Decode(variant)
			if err != nil {
				t.Errorf("AssertRoundTrip: %s: decode %q: %v", e.Name(), variant, err)
				continue
			}
			if got != m {
				t.Errorf("AssertRoundTrip: %s: decode %q = %v, want %v", e.Name(), variant, got, m)
			}
		}
	}
}
