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

package wiretext_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/forgejo/wiretext"
)

// TestClassify tests type classification through the default registry.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  reflect.Type
		want wiretext.Kind
	}{
		{name: "enum", typ: reflect.TypeFor[mergeStyle](), want: wiretext.KindEnum},
		{name: "nullable enum", typ: reflect.TypeFor[wiretext.Nullable[mergeStyle]](), want: wiretext.KindNullableEnum},
		{name: "pointer to enum", typ: reflect.TypeFor[*mergeStyle](), want: wiretext.KindOther},
		{name: "int", typ: reflect.TypeFor[int](), want: wiretext.KindOther},
		{name: "string", typ: reflect.TypeFor[string](), want: wiretext.KindOther},
		{name: "unregistered nullable", typ: reflect.TypeFor[wiretext.Nullable[int]](), want: wiretext.KindOther},
		{name: "nil", typ: nil, want: wiretext.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wiretext.Classify(tt.typ))

			_, ok := wiretext.Lookup(tt.typ)
			assert.Equal(t, tt.want != wiretext.KindOther, ok)
		})
	}
}

// TestKind_String tests kind names.
func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "enum", wiretext.KindEnum.String())
	assert.Equal(t, "nullable-enum", wiretext.KindNullableEnum.String())
	assert.Equal(t, "other", wiretext.KindOther.String())
}

// TestRegistry_DecodeEncode tests the type-erased surface.
func TestRegistry_DecodeEncode(t *testing.T) {
	t.Parallel()

	enumType := reflect.TypeFor[mergeStyle]()
	nullType := reflect.TypeFor[wiretext.Nullable[mergeStyle]]()

	t.Run("enum", func(t *testing.T) {
		t.Parallel()

		v, err := wiretext.Decode(enumType, "Rebase-Merge")
		require.NoError(t, err)
		assert.Equal(t, mergeStyleRebaseMerge, v)

		text, ok, err := wiretext.Encode(enumType, mergeStyleRebaseMerge)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "rebase-merge", text)

		_, _, err = wiretext.Encode(enumType, "rebase-merge")
		require.ErrorIs(t, err, wiretext.ErrTypeMismatch)
	})

	t.Run("enum rejects null", func(t *testing.T) {
		t.Parallel()

		c, ok := wiretext.Lookup(enumType)
		require.True(t, ok)
		_, err := c.DecodeNull()
		require.ErrorIs(t, err, wiretext.ErrUnknownLiteral)
	})

	t.Run("nullable", func(t *testing.T) {
		t.Parallel()

		c, ok := wiretext.Lookup(nullType)
		require.True(t, ok)

		for _, blank := range []string{"", "   "} {
			v, err := c.DecodeString(blank)
			require.NoError(t, err)
			assert.Equal(t, wiretext.None[mergeStyle](), v)
		}

		v, err := c.DecodeNull()
		require.NoError(t, err)
		assert.Equal(t, wiretext.None[mergeStyle](), v)

		v, err = c.DecodeString("squash")
		require.NoError(t, err)
		assert.Equal(t, wiretext.Some(mergeStyleSquash), v)

		_, err = c.DecodeString("octopus")
		require.ErrorIs(t, err, wiretext.ErrUnknownLiteral)

		text, ok, err := c.EncodeValue(wiretext.None[mergeStyle]())
		require.NoError(t, err)
		assert.False(t, ok, "absent encodes to the null marker")
		assert.Empty(t, text)

		text, ok, err = c.EncodeValue(wiretext.Some(mergeStyleFastForwardOnly))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "fast-forward-only", text)

		text, ok, err = c.EncodeValue(mergeStyleMerge)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "merge", text)
	})

	t.Run("other types are declined", func(t *testing.T) {
		t.Parallel()

		_, err := wiretext.Decode(reflect.TypeFor[int](), "1")
		require.ErrorIs(t, err, wiretext.ErrNotEnum)

		var consErr *wiretext.ConstructionError
		require.ErrorAs(t, err, &consErr)
		assert.Equal(t, reflect.TypeFor[int](), consErr.Type)
	})
}

// TestDecodeAs tests the generic dispatch helpers.
func TestDecodeAs(t *testing.T) {
	t.Parallel()

	got, err := wiretext.DecodeAs[mergeStyle]("SQUASH")
	require.NoError(t, err)
	assert.Equal(t, mergeStyleSquash, got)

	text, err := wiretext.EncodeAs(mergeStyleRebaseMerge)
	require.NoError(t, err)
	assert.Equal(t, "rebase-merge", text)

	_, err = wiretext.DecodeAs[int]("1")
	require.ErrorIs(t, err, wiretext.ErrNotEnum)

	_, err = wiretext.EncodeAs(wiretext.Some(mergeStyleMerge))
	require.ErrorIs(t, err, wiretext.ErrNotEnum)
}

// TestRegistry_TypesAndByName tests registry introspection.
func TestRegistry_TypesAndByName(t *testing.T) {
	t.Parallel()

	r := wiretext.TestRegistry(t)
	wiretext.RegisterWith(r, reviewMembers()...)

	types := r.Types()
	require.Len(t, types, 2)
	assert.Equal(t, reflect.TypeFor[reviewState](), types[1])
	assert.Equal(t, reflect.TypeFor[wiretext.Nullable[reviewState]](), types[0])

	c, ok := r.ByName("reviewstate")
	require.True(t, ok)
	assert.Equal(t, wiretext.KindEnum, c.Kind())
	assert.Equal(t, []string{"APPROVED", "REQUEST_CHANGES", "COMMENT"}, c.Texts())

	c, ok = r.ByName("wiretext_test.reviewState")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[reviewState](), c.Type())

	_, ok = r.ByName("mergeStyle")
	assert.False(t, ok, "types from other registries are not visible")
}

func TestCodec_Declared(t *testing.T) {
	t.Parallel()

	enumCodec, ok := wiretext.Lookup(reflect.TypeFor[mergeStyle]())
	require.True(t, ok)
	nullCodec, ok := wiretext.Lookup(reflect.TypeFor[wiretext.Nullable[mergeStyle]]())
	require.True(t, ok)

	assert.True(t, enumCodec.Declared(mergeStyleSquash))
	assert.False(t, enumCodec.Declared(mergeStyle(99)))
	assert.False(t, enumCodec.Declared("squash"))

	assert.True(t, nullCodec.Declared(wiretext.Some(mergeStyleMerge)))
	assert.True(t, nullCodec.Declared(wiretext.None[mergeStyle]()))
	assert.False(t, nullCodec.Declared(wiretext.Some(mergeStyle(-1))))
	assert.False(t, nullCodec.Declared(mergeStyleMerge))
}
