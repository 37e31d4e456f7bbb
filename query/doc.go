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

// Package query renders typed arguments into wire-exact request targets.
//
// A [Builder] starts from a path and accumulates key=value fragments in call
// order. Values are rendered by the constructors in this package, which fix
// the textual form the remote service parses:
//
//   - integers, characters and strings in their natural form
//   - booleans as "true" or "false"
//   - timestamps converted to UTC as 2006-01-02T15:04:05Z
//   - registered enumerations as their wire text (see rivaas.dev/forgejo/wiretext)
//
// Absent values (nil pointers, absent nullables) produce no fragment when
// added with [Builder.Param]:
//
//	target := query.New("repos/issues/search").
//	    Param("state", query.Text(api.StateTypeOpen)).
//	    Param("since", query.Opt(since)).
//	    Paging(query.NewPaging(2, 50)).
//	    String()
//	// repos/issues/search?state=open&page=2&limit=50
//
// Option structs can be encoded from `query` struct tags with [Builder.Fields]:
//
//	type ListOptions struct {
//	    State  api.StateType `query:"state"`
//	    Labels []string      `query:"labels,omitempty"`
//	    query.PagingOptions
//	}
//
// Fragments are never reordered or deduplicated; order is part of the wire
// contract.
package query
