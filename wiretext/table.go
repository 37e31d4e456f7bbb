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
	"sync"

	"golang.org/x/text/cases"
)

// Member declares one member of an enumeration.
type Member[E comparable] struct {
	Value    E      // Go value of the member
	Name     string // Declared name, accepted when decoding
	Override string // Wire text, takes priority over Name when set
}

// canonical returns the text the member encodes to.
func (m Member[E]) canonical() string {
	if m.Override != "" {
		return m.Override
	}

	return m.Name
}

// table holds the forward and reverse text mappings for one enum type.
// It is immutable once built.
type table[E comparable] struct {
	forward map[E]string
	reverse map[string]E // keyed by case-folded text
	texts   []string     // canonical texts in declaration order
}

// buildTable constructs the text table in declaration order. Override texts
// always claim their reverse key; declared names only claim keys that are
// still free, so an override shadows another member's declared name
// regardless of which member is declared first.
func buildTable[E comparable](members []Member[E]) *table[E] {
	t := &table[E]{
		forward: make(map[E]string, len(members)),
		reverse: make(map[string]E, len(members)*2),
		texts:   make([]string, 0, len(members)),
	}

	for _, m := range members {
		if m.Override != "" {
			t.forward[m.Value] = m.Override
			t.reverse[fold(m.Override)] = m.Value
		} else {
			t.forward[m.Value] = m.Name
		}

		key := fold(m.Name)
		if _, claimed := t.reverse[key]; !claimed {
			t.reverse[key] = m.Value
		}

		t.texts = append(t.texts, m.canonical())
	}

	return t
}

// lookup resolves text case-insensitively.
func (t *table[E]) lookup(text string) (E, bool) {
	v, ok := t.reverse[fold(text)]
	return v, ok
}

// folders pools Casers. A Caser keeps state and is not safe for concurrent
// use.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// fold normalizes text for case-insensitive comparison. Unlike
// strings.ToLower it applies full Unicode folding, so "ß" matches "SS".
func fold(s string) string {
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)

	return c.String(s)
}

// validateMembers rejects declarations whose encoding would not round-trip.
// Values must be unique, names non-empty and canonical texts distinct after
// case folding. An overridden member's declared name must not fold onto
// another member's un-overridden wire text.
func validateMembers[E comparable](members []Member[E]) error {
	if len(members) == 0 {
		return fmt.Errorf("no members declared")
	}

	seen := make(map[E]struct{}, len(members))
	canon := make(map[string]int, len(members))
	for i, m := range members {
		if m.Name == "" {
			return fmt.Errorf("member %d has an empty name", i)
		}
		if _, dup := seen[m.Value]; dup {
			return fmt.Errorf("member %q repeats value %v", m.Name, m.Value)
		}
		seen[m.Value] = struct{}{}

		key := fold(m.canonical())
		if j, dup := canon[key]; dup {
			return fmt.Errorf("members %q and %q both encode to %q",
				members[j].Name, m.Name, m.canonical())
		}
		canon[key] = i
	}

	for i, m := range members {
		if m.Override == "" {
			continue
		}
		if j, ok := canon[fold(m.Name)]; ok && j != i && members[j].Override == "" {
			return fmt.Errorf("declared name %q of overridden member shadows the wire text of %q",
				m.Name, members[j].Name)
		}
	}

	return nil
}
