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

//go:build !integration

package query

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedOptions struct {
	A int    `query:"a"`
	B string `query:"b,omitempty"`
	PagingOptions
}

func TestGetStructInfo_Concurrent(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeFor[cachedOptions]()

	var wg sync.WaitGroup
	results := make([]*structInfo, 32)
	for i := range results {
		wg.Go(func() {
			results[i] = getStructInfo(typ)
		})
	}
	wg.Wait()

	for _, si := range results {
		assert.Same(t, results[0], si)
	}
}

func TestGetStructInfo_Layout(t *testing.T) {
	t.Parallel()

	si := getStructInfo(reflect.TypeFor[*cachedOptions]())
	require.Len(t, si.fields, 3)

	assert.Equal(t, "a", si.fields[0].key)
	assert.False(t, si.fields[0].omitEmpty)
	assert.Equal(t, "b", si.fields[1].key)
	assert.True(t, si.fields[1].omitEmpty)
	assert.Equal(t, fieldPaging, si.fields[2].kind)
	assert.Equal(t, []int{2}, si.fields[2].index)
}

func TestGetStructInfo_PanicsOnNonStruct(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "query: getStructInfo expects struct, got int", func() {
		getStructInfo(reflect.TypeFor[int]())
	})
}

func TestEscape(t *testing.T) {
	t.Parallel()

	s := "already-safe/value:1"
	assert.Equal(t, s, escape(s))
	assert.Equal(t, "%25%20%26", escape("% &"))
}
