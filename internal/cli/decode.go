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
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type decodeResult struct {
	Type    string `json:"type" yaml:"type" toml:"type"`
	Literal string `json:"literal" yaml:"literal" toml:"literal"`
	Text    string `json:"text" yaml:"text" toml:"text"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> <literal>",
		Short: "Decode a wire literal and print its canonical text",
		Long: "Decode a literal the way the client decodes response fields: case-insensitive, " +
			"overrides first. The canonical wire text of the decoded member is printed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := lookupEnum(args[0])
			if err != nil {
				return err
			}

			v, err := codec.DecodeString(args[1])
			if err != nil {
				return WrapExitError(ExitFailure,
					fmt.Sprintf("valid literals are %s", strings.Join(codec.Texts(), ", ")), err)
			}

			text, _, err := codec.EncodeValue(v)
			if err != nil {
				return WrapExitError(ExitFailure, "cannot encode decoded value", err)
			}
			opts.Logger().Debug("decoded literal", "type", codec.Name(), "literal", args[1], "text", text)

			res := decodeResult{Type: codec.Name(), Literal: args[1], Text: text}

			return opts.output(cmd).Print(res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Text)
				return err
			})
		},
	}
}
