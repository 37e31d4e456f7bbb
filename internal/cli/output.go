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

package cli

import (
	"errors"
	"fmt"
	"io"

	"rivaas.dev/forgejo/record"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Decode or validation failure
	ExitCommandError = 2 // Bad flags, arguments or unknown types
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure when err is
// not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// OutputFormatter writes command results as text or as a serialized record.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes data in the configured format. Text output is delegated to
// text.
func (f *OutputFormatter) Print(data any, text func(w io.Writer) error) error {
	if f.Format == "text" {
		return text(f.Writer)
	}

	rf, err := record.ParseFormat(f.Format)
	if err != nil {
		return err
	}

	out, err := record.Marshal(rf, data)
	if err != nil {
		return err
	}
	if _, err := f.Writer.Write(out); err != nil {
		return err
	}
	if rf == record.FormatJSON {
		_, err = io.WriteString(f.Writer, "\n")
	}

	return err
}
