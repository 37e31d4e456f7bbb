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
	"reflect"
	"slices"
	"strings"
)

// TagQuery is the struct tag read by [Builder.Fields].
const TagQuery = "query"

type fieldKind uint8

const (
	fieldScalar fieldKind = iota
	fieldSlice
	fieldPaging
)

type fieldInfo struct {
	index     []int
	key       string
	kind      fieldKind
	omitEmpty bool
}

type structInfo struct {
	fields []fieldInfo
}

var pagingType = reflect.TypeFor[PagingOptions]()

// Fields adds one parameter per tagged field of the struct v points to, in
// declaration order. Embedded structs are flattened, PagingOptions expands
// to page and limit, and slices add one fragment per element. A nil v adds
// nothing.
//
// Fields panics when v is not a struct or a field type has no rendering rule.
//
// Example:
//
//	type ListOptions struct {
//	    State  api.StateType `query:"state"`
//	    Labels []string      `query:"labels,omitempty"`
//	    Since  *time.Time    `query:"since"`
//	    query.PagingOptions
//	}
func (b *Builder) Fields(v any) *Builder {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return b
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return b
	}
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("query: Fields expects struct, got %s", rv.Kind()))
	}

	for _, f := range getStructInfo(rv.Type()).fields {
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}

		switch f.kind {
		case fieldPaging:
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			b.Paging(fv.Interface().(PagingOptions))
		case fieldSlice:
			for i := range fv.Len() {
				b.Param(f.key, formatValue(fv.Index(i)))
			}
		default:
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			b.Param(f.key, formatValue(fv))
		}
	}

	return b
}

// parseStructType walks t collecting tagged fields. indexPrefix is the index
// path of t inside the outermost struct.
func parseStructType(t reflect.Type, indexPrefix []int) *structInfo {
	return parseEmbedded(t, indexPrefix, map[reflect.Type]bool{})
}

// parseEmbedded is parseStructType with the set of struct types on the
// current embedding path. An embedded type already on the path is skipped,
// so self-referencing structs terminate.
func parseEmbedded(t reflect.Type, indexPrefix []int, visiting map[reflect.Type]bool) *structInfo {
	info := &structInfo{fields: make([]fieldInfo, 0, t.NumField())}
	visiting[t] = true
	defer delete(visiting, t)

	for i := range t.NumField() {
		field := t.Field(i)
		index := slices.Concat(indexPrefix, []int{i})
		if !field.IsExported() {
			// Exported fields of an embedded unexported struct are promoted.
			if field.Anonymous && field.Type.Kind() == reflect.Struct && !visiting[field.Type] {
				info.fields = append(info.fields, parseEmbedded(field.Type, index, visiting).fields...)
			}
			continue
		}

		tag, tagged := field.Tag.Lookup(TagQuery)
		if tag == "-" {
			continue
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		if fieldType == pagingType {
			info.fields = append(info.fields, fieldInfo{index: index, kind: fieldPaging})
			continue
		}

		if field.Anonymous && fieldType.Kind() == reflect.Struct && !tagged {
			if !visiting[fieldType] {
				info.fields = append(info.fields, parseEmbedded(fieldType, index, visiting).fields...)
			}
			continue
		}

		if !tagged {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		fi := fieldInfo{
			index:     index,
			key:       name,
			omitEmpty: opts == "omitempty",
		}

		elem := field.Type
		if (elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array) && !supported(elem) {
			fi.kind = fieldSlice
			elem = elem.Elem()
		}
		if !supported(elem) {
			panic(fmt.Sprintf("query: field %s.%s: %s: %s", t.Name(), field.Name, ErrUnsupportedType, field.Type))
		}

		info.fields = append(info.fields, fi)
	}

	return info
}
