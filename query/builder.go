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
	"fmt"
	"strings"
)

type state uint8

const (
	stateEmpty state = iota
	stateNonEmpty
)

// Builder renders a path followed by key=value fragments. The first fragment
// is prefixed with '?', every later one with '&'. Fragments keep call order.
//
// A Builder is meant for a single request and is not safe for concurrent use.
type Builder struct {
	path      string
	fragments []string
	state     state
	err       error
}

// New returns a builder over path with no fragments.
func New(path string) *Builder {
	return &Builder{path: path}
}

// Append adds key=value unconditionally. An absent value renders as "key=".
// Values that failed to render are recorded in [Builder.Err] and skipped.
func (b *Builder) Append(key string, v Value) *Builder {
	if !b.record(key, v) {
		return b
	}
	b.add(key, v.text)

	return b
}

// Param adds key=value when v is present and does nothing when it is absent.
//
// Example:
//
//	query.New("notifications").
//	    Param("all", query.Bool(true)).
//	    Param("since", query.Opt(since)). // omitted when since is nil
//	    String()
func (b *Builder) Param(key string, v Value) *Builder {
	if !b.record(key, v) || !v.present {
		return b
	}
	b.add(key, v.text)

	return b
}

// Paging adds page then limit, omitting whichever is unset.
func (b *Builder) Paging(p PagingOptions) *Builder {
	return b.Param("page", p.page()).Param("limit", p.limit())
}

// Path returns the path the builder was created with.
func (b *Builder) Path() string {
	return b.path
}

// Len returns the number of fragments added so far.
func (b *Builder) Len() int {
	return len(b.fragments)
}

// String returns the request target. With no fragments it is the bare path.
func (b *Builder) String() string {
	if b.state == stateEmpty {
		return b.path
	}

	var sb strings.Builder
	sb.WriteString(b.path)
	for i, f := range b.fragments {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(f)
	}

	return sb.String()
}

// Err returns the first rendering failure, such as a strict registry refusing
// an undeclared enum value. The builder keeps accepting fragments after it.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) record(key string, v Value) bool {
	if v.err == nil {
		return true
	}
	if b.err == nil {
		b.err = fmt.Errorf("query: parameter %q: %w", key, v.err)
	}

	return false
}

func (b *Builder) add(key, text string) {
	b.fragments = append(b.fragments, escape(key)+"="+escape(text))
	b.state = stateNonEmpty
}

// WithQuery renders path with a single parameter, or the bare path when v is
// absent.
func WithQuery(path, key string, v Value) string {
	return New(path).Param(key, v).String()
}

// OptText renders *p through its TextMarshaler, or absent for a nil pointer.
func OptText[M encoding.TextMarshaler](p *M) Value {
	if p == nil {
		return Absent()
	}

	return Text(*p)
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes the bytes a request target cannot carry literally.
// ':' and '/' are kept so timestamps and nested paths stay byte-exact.
func escape(s string) string {
	n := 0
	for i := range len(s) {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := range len(s) {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		buf = append(buf, c)
	}

	return string(buf)
}

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}

	switch c {
	case '-', '.', '_', '~', '!', '$', '\'', '(', ')', '*', ',', ';', ':', '@', '/', '?':
		return false
	}

	return true
}
