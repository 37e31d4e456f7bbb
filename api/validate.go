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

package api

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/forgejo/query"
	"rivaas.dev/forgejo/wiretext"
)

// FieldError is one failed constraint.
type FieldError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists the failed constraints of a record or option
// struct, sorted by path.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Path + ": " + f.Message
	}

	return "api: validation failed: " + strings.Join(parts, "; ")
}

// Code returns a machine-readable error code.
func (e *ValidationError) Code() string {
	return "validation_error"
}

// HasCode reports whether any field failed with code.
func (e *ValidationError) HasCode(code string) bool {
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}

	return false
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report query parameter or JSON names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{query.TagQuery, "json"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return fld.Name
	})

	if err := v.RegisterValidation("wiretext", isDeclaredMember); err != nil {
		panic("api: register wiretext validator: " + err.Error())
	}

	return v
})

// isDeclaredMember accepts registered enumeration values that are declared
// members.
func isDeclaredMember(fl validator.FieldLevel) bool {
	field := fl.Field()
	codec, ok := wiretext.Lookup(field.Type())

	return ok && codec.Declared(field.Interface())
}

// Validate checks the `validate` tags of an option struct or record. Enum
// fields tagged `wiretext` must hold a declared member.
func Validate(v any) error {
	err := validate().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("api: validate: %w", err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, e := range verrs {
		path := e.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		result.Fields = append(result.Fields, FieldError{
			Path:    path,
			Code:    "tag." + e.Tag(),
			Message: tagMessage(e),
		})
	}
	sort.SliceStable(result.Fields, func(i, j int) bool {
		return result.Fields[i].Path < result.Fields[j].Path
	})

	return result
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "wiretext":
		return fmt.Sprintf("%v is not a declared value", e.Value())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "failed " + e.Tag()
	}
}

// Validator adapts [Validate] to record.Validator.
type Validator struct{}

// Validate implements record.Validator.
func (Validator) Validate(v any) error {
	return Validate(v)
}
