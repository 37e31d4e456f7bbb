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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/forgejo/query"
	"rivaas.dev/forgejo/wiretext"
)

func TestValue_Rendering(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	text := "text"
	created := sortKeyCreated

	tests := []struct {
		name string
		v    query.Value
		want string
	}{
		{"int", query.Int(10), "10"},
		{"negative int", query.Int(int64(-42)), "-42"},
		{"int max", query.Int(int64(math.MaxInt64)), "9223372036854775807"},
		{"uint", query.Uint(uint16(7)), "7"},
		{"float64", query.Float(2.5), "2.5"},
		{"float32 shortest form", query.Float(float32(0.1)), "0.1"},
		{"string", query.String("str"), "str"},
		{"named string", query.String(issueStateOpen), "open"},
		{"bool true", query.Bool(true), "true"},
		{"bool false", query.Bool(false), "false"},
		{"char", query.Char('x'), "x"},
		{"char multibyte", query.Char('é'), "é"},
		{"time", query.Time(ts), "2024-03-05T07:08:09Z"},
		{"time drops sub-second", query.Time(ts.Add(999 * time.Millisecond)), "2024-03-05T07:08:09Z"},
		{"enum", query.Text(issueStateClosed), "closed"},
		{"of int", query.Of(3), "3"},
		{"of character", query.Of(query.Character('y')), "y"},
		{"of time", query.Of(ts), "2024-03-05T07:08:09Z"},
		{"opt present", query.Opt(&text), "text"},
		{"any registered enum", query.Any(sortKeyRecentUpdate), "recentupdate"},
		{"any enum pointer", query.Any(&created), "created"},
		{"any nullable some", query.Any(wiretext.Some(issueStateAll)), "all"},
		{"any bool", query.Any(true), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, tt.v.Err())
			got, ok := tt.v.Text()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_TimeConvertsOffsetsToUTC(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	plusTwo := utc.In(time.FixedZone("UTC+2", 2*60*60))
	minusFive := utc.In(time.FixedZone("UTC-5", -5*60*60))

	assert.Equal(t, "2024-01-02T03:04:05Z", query.Time(utc).String())
	assert.Equal(t, query.Time(utc).String(), query.Time(plusTwo).String())
	assert.Equal(t, query.Time(utc).String(), query.Time(minusFive).String())
}

func TestValue_TimeTruncatesToSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ts   time.Time
	}{
		{"nanoseconds", time.Date(2025, 1, 2, 3, 4, 5, 999, time.UTC)},
		{"milliseconds", time.Date(2025, 1, 2, 3, 4, 5, 500_000_000, time.UTC)},
		{"offset", time.Date(2025, 1, 2, 12, 4, 5, 999_999_999, time.FixedZone("UTC+9", 9*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "2025-01-02T03:04:05Z", query.Time(tt.ts).String())
			assert.Equal(t, "path?time=2025-01-02T03:04:05Z",
				query.New("path").Param("time", query.Time(tt.ts)).String())
		})
	}
}

func TestValue_Absent(t *testing.T) {
	t.Parallel()

	var (
		nilInt   *int
		nilState *issueState
		nilTime  *time.Time
	)

	tests := []struct {
		name string
		v    query.Value
	}{
		{"zero value", query.Value{}},
		{"absent", query.Absent()},
		{"nil scalar pointer", query.Opt(nilInt)},
		{"nil time pointer", query.Opt(nilTime)},
		{"nil text marshaler", query.Text(nil)},
		{"nil enum pointer", query.Text(nilState)},
		{"nil opt text", query.OptText[issueState](nil)},
		{"absent nullable", query.Text(wiretext.None[issueState]())},
		{"any nil", query.Any(nil)},
		{"any nil pointer", query.Any(nilInt)},
		{"any absent nullable", query.Any(wiretext.None[sortKey]())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, tt.v.Err())
			_, ok := tt.v.Text()
			assert.False(t, ok)
		})
	}
}

func TestValue_Errors(t *testing.T) {
	t.Parallel()

	t.Run("marshaler failure", func(t *testing.T) {
		t.Parallel()

		v := query.Text(brokenMarshaler{})
		require.ErrorIs(t, v.Err(), errBrokenMarshaler)
		_, ok := v.Text()
		assert.False(t, ok)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		v := query.Any(map[string]int{"a": 1})
		require.ErrorIs(t, v.Err(), query.ErrUnsupportedType)
		assert.Contains(t, v.Err().Error(), "map[string]int")
	})
}
