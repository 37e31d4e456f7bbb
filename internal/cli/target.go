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
	"github.com/spf13/pflag"

	"rivaas.dev/forgejo/api"
)

type targetResult struct {
	Target string `json:"target" yaml:"target" toml:"target"`
}

// NewTargetCommand creates the target command and its per-endpoint
// subcommands.
func NewTargetCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Render the request target of an endpoint",
		Long:  "Render the path and query string the client sends for an endpoint, from flags.",
	}

	cmd.AddCommand(newIssuesTargetCommand(opts))
	cmd.AddCommand(newReposTargetCommand(opts))
	cmd.AddCommand(newNotificationsTargetCommand(opts))
	cmd.AddCommand(newStatusesTargetCommand(opts))

	return cmd
}

// printTarget reports a rendered target or maps the rendering error to an
// exit code.
func printTarget(cmd *cobra.Command, opts *RootOptions, target string, err error) error {
	if err != nil {
		return WrapExitError(ExitFailure, "invalid options", err)
	}
	opts.Logger().Debug("rendered target", "command", cmd.Name(), "target", target)

	res := targetResult{Target: target}

	return opts.output(cmd).Print(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Target)
		return err
	})
}

func addPagingFlags(fs *pflag.FlagSet, page, limit *int) {
	fs.IntVar(page, "page", 0, "page number (1-based)")
	fs.IntVar(limit, "limit", 0, "page size")
}

func newIssuesTargetCommand(opts *RootOptions) *cobra.Command {
	var o api.ListIssuesOptions
	var labels, milestones []string

	cmd := &cobra.Command{
		Use:   "issues <owner> <repo>",
		Short: "GET /repos/{owner}/{repo}/issues",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Labels = api.CommaList(labels)
			o.Milestones = api.CommaList(milestones)
			target, err := api.IssuesTarget(args[0], args[1], o)

			return printTarget(cmd, opts, target, err)
		},
	}

	fs := cmd.Flags()
	fs.Var(newEnumValue(&o.State), "state", "issue state (open|closed|all)")
	fs.Var(newEnumValue(&o.Type), "type", "issue type (issues|pulls)")
	fs.StringSliceVar(&labels, "label", nil, "label names")
	fs.StringSliceVar(&milestones, "milestone", nil, "milestone names")
	fs.StringVarP(&o.Keyword, "query", "q", "", "search keyword")
	fs.Var(&timeValue{target: &o.Since}, "since", "only issues updated after this time")
	fs.Var(&timeValue{target: &o.Before}, "before", "only issues updated before this time")
	fs.StringVar(&o.CreatedBy, "created-by", "", "only issues created by this user")
	fs.StringVar(&o.AssignedBy, "assigned-by", "", "only issues assigned to this user")
	fs.StringVar(&o.MentionedBy, "mentioned-by", "", "only issues mentioning this user")
	addPagingFlags(fs, &o.Page, &o.Limit)

	return cmd
}

func newReposTargetCommand(opts *RootOptions) *cobra.Command {
	var o api.SearchReposOptions
	var private, archived, template bool

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "GET /repos/search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Tri-state filters are only sent when given.
			fs := cmd.Flags()
			if fs.Changed("private") {
				o.Private = &private
			}
			if fs.Changed("archived") {
				o.Archived = &archived
			}
			if fs.Changed("template") {
				o.Template = &template
			}
			target, err := api.SearchReposTarget(o)

			return printTarget(cmd, opts, target, err)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.Keyword, "query", "q", "", "search keyword")
	fs.BoolVar(&o.Topic, "topic", false, "match the keyword against topics only")
	fs.BoolVar(&o.IncludeDescription, "include-desc", false, "also search descriptions")
	fs.Int64Var(&o.OwnerID, "uid", 0, "only repositories owned by this user id")
	fs.BoolVar(&private, "private", false, "include or exclude private repositories")
	fs.BoolVar(&archived, "archived", false, "include or exclude archived repositories")
	fs.BoolVar(&template, "template", false, "include or exclude template repositories")
	fs.StringVar(&o.Mode, "mode", "", "repository type (fork|source|mirror|collaborative)")
	fs.BoolVar(&o.Exclusive, "exclusive", false, "only repositories owned by uid")
	fs.Var(newEnumValue(&o.Sort), "sort", "sort key (alpha|created|updated|size|id)")
	fs.Var(newEnumValue(&o.Order), "order", "sort order (asc|desc)")
	addPagingFlags(fs, &o.Page, &o.Limit)

	return cmd
}

func newNotificationsTargetCommand(opts *RootOptions) *cobra.Command {
	var o api.ListNotificationsOptions

	cmd := &cobra.Command{
		Use:   "notifications [<owner> <repo>]",
		Short: "GET /notifications or /repos/{owner}/{repo}/notifications",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				target, err := api.RepoNotificationsTarget(args[0], args[1], o)
				return printTarget(cmd, opts, target, err)
			}
			target, err := api.NotificationsTarget(o)

			return printTarget(cmd, opts, target, err)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&o.All, "all", false, "include read notifications")
	fs.Var(newEnumSliceValue(&o.StatusTypes), "status", "statuses to include (unread|read|pinned)")
	fs.Var(newEnumSliceValue(&o.SubjectTypes), "subject", "subject types to include (issue|pull|commit|repository)")
	fs.Var(&timeValue{target: &o.Since}, "since", "only notifications updated after this time")
	fs.Var(&timeValue{target: &o.Before}, "before", "only notifications updated before this time")
	addPagingFlags(fs, &o.Page, &o.Limit)

	return cmd
}

func newStatusesTargetCommand(opts *RootOptions) *cobra.Command {
	var o api.ListCommitStatusesOptions

	cmd := &cobra.Command{
		Use:   "statuses <owner> <repo> <ref>",
		Short: "GET /repos/{owner}/{repo}/statuses/{ref}",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := api.CommitStatusesTarget(args[0], args[1], args[2], o)
			return printTarget(cmd, opts, target, err)
		},
	}

	fs := cmd.Flags()
	fs.Var(newEnumValue(&o.Sort), "sort", "sort key (oldest|recentupdate|leastupdate|leastindex|highestindex)")
	fs.Var(newEnumValue(&o.State), "state", "status state (pending|success|error|failure|warning)")
	addPagingFlags(fs, &o.Page, &o.Limit)

	return cmd
}
