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

package wiretext

import (
	"errors"
	"fmt"
	"reflect"
)

// Static errors for text mapping operations.
var (
	ErrUnknownLiteral   = errors.New("unknown enum literal")
	ErrUndeclaredMember = errors.New("undeclared enum member")
	ErrNotEnum          = errors.New("not a registered enum type")
	ErrTypeMismatch     = errors.New("value does not match codec type")
)

// DecodeError reports a literal that has no mapping for the requested type.
// It is terminal for the field being decoded; retrying cannot change the
// literal.
//
// Use [errors.As] to check for DecodeError:
//
//	var decErr *wiretext.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("type %s rejected %q\n", decErr.Type, decErr.Literal)
//	}
type DecodeError struct {
	Type    reflect.Type // Requested enum type
	Literal string       // The text that failed to decode
	Err     error        // Underlying error, usually ErrUnknownLiteral
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("wiretext: cannot decode %q as %s: %v", e.Literal, typeName(e.Type), e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable error code.
func (e *DecodeError) Code() string {
	return "unknown_literal"
}

// ConstructionError reports a codec that could not be built or a declaration
// that was rejected at registration.
type ConstructionError struct {
	Type   reflect.Type // Type the codec was requested for
	Reason string       // Human-readable reason
	Err    error        // Underlying error, if any
}

// Error returns a formatted error message.
func (e *ConstructionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("wiretext: cannot build codec for %s: %v", typeName(e.Type), e.Err)
	}

	return fmt.Sprintf("wiretext: cannot build codec for %s: %s", typeName(e.Type), e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable error code.
func (e *ConstructionError) Code() string {
	return "codec_construction"
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
