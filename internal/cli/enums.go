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

	"github.com/spf13/cobra"

	"rivaas.dev/forgejo/wiretext"
)

type enumSummary struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Members int    `json:"members" yaml:"members" toml:"members"`
}

type enumList struct {
	Types []enumSummary `json:"types" yaml:"types" toml:"types"`
}

type enumTable struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Texts []string `json:"texts" yaml:"texts" toml:"texts"`
}

// NewEnumsCommand creates the enums command.
func NewEnumsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enums [type]",
		Short: "List registered enumerations or the wire texts of one",
		Long: "Without arguments, list every registered enumeration type. With a type name " +
			"(e.g. api.MergeStyle or MergeStyle), print its wire texts in declaration order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.output(cmd)

			if len(args) == 0 {
				list := enumList{}
				for _, t := range wiretext.Types() {
					codec, ok := wiretext.Lookup(t)
					if !ok || codec.Kind() != wiretext.KindEnum {
						continue
					}
					list.Types = append(list.Types, enumSummary{Name: codec.Name(), Members: len(codec.Texts())})
				}

				return out.Print(list, func(w io.Writer) error {
					for _, s := range list.Types {
						if _, err := fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Members); err != nil {
							return err
						}
					}
					return nil
				})
			}

			codec, err := lookupEnum(args[0])
			if err != nil {
				return err
			}
			opts.Logger().Debug("enum table", "type", codec.Name(), "members", len(codec.Texts()))

			table := enumTable{Name: codec.Name(), Texts: codec.Texts()}

			return out.Print(table, func(w io.Writer) error {
				for _, text := range table.Texts {
					if _, err := fmt.Fprintln(w, text); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// lookupEnum resolves a type name to the codec of a plain enumeration.
func lookupEnum(name string) (wiretext.Codec, error) {
	codec, ok := wiretext.ByName(name)
	if !ok || codec.Kind() != wiretext.KindEnum {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown enumeration %q", name))
	}

	return codec, nil
}
