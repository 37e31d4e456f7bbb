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
	"fmt"
	"maps"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	// RCU: readers load an immutable map, writers copy and swap.
	structInfoCachePtr atomic.Pointer[map[reflect.Type]*structInfo]
	structInfoCacheMu  sync.Mutex
)

func init() {
	m := make(map[reflect.Type]*structInfo)
	structInfoCachePtr.Store(&m)
}

// getStructInfo returns the cached field layout of typ, parsing it on first
// use. Concurrent callers for the same type parse it once.
func getStructInfo(typ reflect.Type) *structInfo {
	if typ == nil {
		panic("query: getStructInfo called with nil type")
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("query: getStructInfo expects struct, got %s", typ.Kind()))
	}

	m := structInfoCachePtr.Load()
	if si, ok := (*m)[typ]; ok {
		return si
	}

	structInfoCacheMu.Lock()
	defer structInfoCacheMu.Unlock()

	m = structInfoCachePtr.Load()
	if si, ok := (*m)[typ]; ok {
		return si
	}

	si := parseStructType(typ, nil)

	next := make(map[reflect.Type]*structInfo, len(*m)+1)
	maps.Copy(next, *m)
	next[typ] = si
	structInfoCachePtr.Store(&next)

	return si
}

// WarmupCache parses option struct types ahead of first use so that tag
// mistakes surface at startup. Non-struct values are skipped.
//
// Example:
//
//	func init() {
//	    query.WarmupCache(api.ListIssuesOptions{}, api.SearchReposOptions{})
//	}
func WarmupCache(types ...any) {
	for _, t := range types {
		typ := reflect.TypeOf(t)
		if typ == nil {
			continue
		}
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			continue
		}
		getStructInfo(typ)
	}
}
