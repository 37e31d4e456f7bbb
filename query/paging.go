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

// PagingOptions selects a page of a list endpoint. Zero fields are unset and
// produce no fragment.
type PagingOptions struct {
	// Page is the 1-based page number.
	Page int `json:"page,omitempty" yaml:"page,omitempty" validate:"gte=0"`
	// Limit is the page size.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty" validate:"gte=0"`
}

// NewPaging returns paging options for page and limit.
func NewPaging(page, limit int) PagingOptions {
	return PagingOptions{Page: page, Limit: limit}
}

// IsZero reports whether neither field is set.
func (p PagingOptions) IsZero() bool {
	return p.Page == 0 && p.Limit == 0
}

func (p PagingOptions) page() Value {
	if p.Page == 0 {
		return Absent()
	}

	return Int(p.Page)
}

func (p PagingOptions) limit() Value {
	if p.Limit == 0 {
		return Absent()
	}

	return Int(p.Limit)
}
