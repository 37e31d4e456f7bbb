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

// Package api declares the enumerations, option structs and request targets
// of the Forgejo REST API endpoints the client covers.
//
// Every enumeration is registered with rivaas.dev/forgejo/wiretext, so its
// wire text is shared by record bodies (see rivaas.dev/forgejo/record) and
// query strings (see rivaas.dev/forgejo/query).
//
// Example:
//
//	target, err := api.IssuesTarget("forgejo", "forgejo", api.ListIssuesOptions{
//	    State:         api.StateClosed,
//	    Labels:        api.CommaList{"bug"},
//	    PagingOptions: query.NewPaging(1, 50),
//	})
//	// repos/forgejo/forgejo/issues?state=closed&labels=bug&page=1&limit=50
package api
