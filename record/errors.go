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

package record

import (
	"errors"
	"fmt"
)

// Static errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownField      = errors.New("unknown field")
	ErrNilTarget         = errors.New("decode target must be a non-nil pointer")
)

// Operations reported in [Error].
const (
	OpMarshal   = "marshal"
	OpUnmarshal = "unmarshal"
	OpValidate  = "validate"
)

// Error reports a failed encode, decode or validation in a given format.
// The underlying error, such as a *wiretext.DecodeError, is reachable
// through errors.As.
type Error struct {
	Format Format
	Op     string
	Err    error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("record: %s %s: %v", e.Format, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns a machine-readable code for the failed operation.
func (e *Error) Code() string {
	return "record_" + e.Op
}
