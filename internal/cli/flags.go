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

package cli

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"rivaas.dev/forgejo/wiretext"
)

// enumValue is a flag value decoded through the wiretext registry.
type enumValue[E comparable] struct {
	target *E
	set    bool
}

func newEnumValue[E comparable](target *E) *enumValue[E] {
	return &enumValue[E]{target: target}
}

func (v *enumValue[E]) String() string {
	if v.target == nil || !v.set {
		return ""
	}
	s, _ := wiretext.EncodeAs(*v.target)

	return s
}

func (v *enumValue[E]) Set(s string) error {
	e, err := wiretext.DecodeAs[E](s)
	if err != nil {
		return err
	}
	*v.target = e
	v.set = true

	return nil
}

func (v *enumValue[E]) Type() string { return "string" }

// enumSliceValue accumulates repeated or comma-separated enum flags.
type enumSliceValue[E comparable] struct {
	target *[]E
}

func newEnumSliceValue[E comparable](target *[]E) *enumSliceValue[E] {
	return &enumSliceValue[E]{target: target}
}

func (v *enumSliceValue[E]) String() string {
	if v.target == nil {
		return ""
	}
	texts := make([]string, 0, len(*v.target))
	for _, e := range *v.target {
		s, _ := wiretext.EncodeAs(e)
		texts = append(texts, s)
	}

	return strings.Join(texts, ",")
}

func (v *enumSliceValue[E]) Set(s string) error {
	for part := range strings.SplitSeq(s, ",") {
		e, err := wiretext.DecodeAs[E](strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*v.target = append(*v.target, e)
	}

	return nil
}

func (v *enumSliceValue[E]) Type() string { return "strings" }

// timeValue parses a timestamp flag into an optional time.
type timeValue struct {
	target **time.Time
}

func (v *timeValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}

	return (*v.target).Format(time.RFC3339)
}

func (v *timeValue) Set(s string) error {
	t, err := cast.ToTimeE(s)
	if err != nil {
		return err
	}
	*v.target = &t

	return nil
}

func (v *timeValue) Type() string { return "time" }
