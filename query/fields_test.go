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

package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/forgejo/query"
	"rivaas.dev/forgejo/wiretext"
)

type listOptions struct {
	State    issueState                 `query:"state"`
	Sort     wiretext.Nullable[sortKey] `query:"sort"`
	Labels   []string                   `query:"labels,omitempty"`
	Since    *time.Time                 `query:"since"`
	Mine     bool                       `query:"mine,omitempty"`
	Initial  query.Character            `query:"initial,omitempty"`
	Internal string                     `query:"-"`
	Untagged string
	query.PagingOptions
}

type baseOptions struct {
	Keyword string `query:"q,omitempty"`
}

type searchOptions struct {
	baseOptions
	*ExtraOptions
	Private *bool `query:"private"`
	Paging  *query.PagingOptions
}

type ExtraOptions struct {
	Topic bool `query:"topic"`
}

// Node embeds a pointer to itself.
type Node struct {
	*Node
	Depth int `query:"depth"`
}

type Left struct {
	*Right
	L int `query:"l"`
}

type Right struct {
	*Left
	R int `query:"r"`
}

func TestBuilder_Fields(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name string
		opts any
		want string
	}{
		{
			name: "all fields set",
			opts: listOptions{
				State:         issueStateOpen,
				Sort:          wiretext.Some(sortKeyRecentUpdate),
				Labels:        []string{"bug", "help wanted"},
				Since:         &since,
				Mine:          true,
				Initial:       'k',
				Internal:      "hidden",
				Untagged:      "hidden",
				PagingOptions: query.NewPaging(3, 10),
			},
			want: "issues?state=open&sort=recentupdate&labels=bug&labels=help%20wanted" +
				"&since=2024-06-01T10:00:00Z&mine=true&initial=k&page=3&limit=10",
		},
		{
			name: "absent and empty fields skipped",
			opts: &listOptions{State: issueStateAll},
			want: "issues?state=all",
		},
		{
			name: "nil pointer adds nothing",
			opts: (*listOptions)(nil),
			want: "issues",
		},
		{
			name: "embedded structs flattened and nil embedded pointer skipped",
			opts: searchOptions{
				baseOptions: baseOptions{Keyword: "wire"},
				Private:     new(bool),
				Paging:      &query.PagingOptions{Limit: 5},
			},
			want: "issues?q=wire&private=false&limit=5",
		},
		{
			name: "embedded pointer set",
			opts: searchOptions{ExtraOptions: &ExtraOptions{Topic: true}},
			want: "issues?topic=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := query.New("issues").Fields(tt.opts)
			require.NoError(t, b.Err())
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBuilder_FieldsAfterParam(t *testing.T) {
	t.Parallel()

	got := query.New("issues").
		Param("type", query.String("pulls")).
		Fields(listOptions{State: issueStateClosed}).
		String()

	assert.Equal(t, "issues?type=pulls&state=closed", got)
}

func TestBuilder_FieldsPanics(t *testing.T) {
	t.Parallel()

	t.Run("unsupported field type", func(t *testing.T) {
		t.Parallel()

		type badOptions struct {
			Extra map[string]string `query:"extra"`
		}
		assert.PanicsWithValue(t,
			"query: field badOptions.Extra: unsupported query value type: map[string]string",
			func() { query.New("p").Fields(badOptions{}) },
		)
	})

	t.Run("not a struct", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { query.New("p").Fields(42) })
	})
}

func TestBuilder_FieldsEmbeddingCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"self", Node{Depth: 1, Node: &Node{Depth: 2}}, "p?depth=1"},
		{"self nil", &Node{Depth: 3}, "p?depth=3"},
		{"mutual", Left{L: 1, Right: &Right{R: 2}}, "p?r=2&l=1"},
		{"mutual nil", Right{R: 4}, "p?r=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			require.NotPanics(t, func() { got = query.New("p").Fields(tt.v).String() })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWarmupCache(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		query.WarmupCache(listOptions{}, &searchOptions{}, nil, 7)
	})
}
