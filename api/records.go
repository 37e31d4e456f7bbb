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
	"time"

	"rivaas.dev/forgejo/wiretext"
)

// CreateStatusOption is the body of POST /repos/{owner}/{repo}/statuses/{sha}.
type CreateStatusOption struct {
	State       CommitStatusState `json:"state" yaml:"state" toml:"state" validate:"wiretext"`
	TargetURL   string            `json:"target_url,omitempty" yaml:"target_url,omitempty" toml:"target_url,omitempty" validate:"omitempty,url"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Context     string            `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

// MergePullRequestOption is the body of POST /repos/{owner}/{repo}/pulls/{index}/merge.
type MergePullRequestOption struct {
	Do                     MergeStyle `json:"Do" yaml:"Do" toml:"Do" validate:"wiretext"`
	MergeTitleField        string     `json:"MergeTitleField,omitempty" yaml:"MergeTitleField,omitempty" toml:"MergeTitleField,omitempty"`
	MergeMessageField      string     `json:"MergeMessageField,omitempty" yaml:"MergeMessageField,omitempty" toml:"MergeMessageField,omitempty"`
	HeadCommitID           string     `json:"head_commit_id,omitempty" yaml:"head_commit_id,omitempty" toml:"head_commit_id,omitempty"`
	DeleteBranchAfterMerge bool       `json:"delete_branch_after_merge,omitempty" yaml:"delete_branch_after_merge,omitempty" toml:"delete_branch_after_merge,omitempty"`
	ForceMerge             bool       `json:"force_merge,omitempty" yaml:"force_merge,omitempty" toml:"force_merge,omitempty"`
	MergeWhenChecksSucceed bool       `json:"merge_when_checks_succeed,omitempty" yaml:"merge_when_checks_succeed,omitempty" toml:"merge_when_checks_succeed,omitempty"`
}

// CreateAccessTokenOption is the body of POST /users/{username}/tokens.
type CreateAccessTokenOption struct {
	Name   string             `json:"name" yaml:"name" toml:"name" validate:"required"`
	Scopes []AccessTokenScope `json:"scopes,omitempty" yaml:"scopes,omitempty" toml:"scopes,omitempty" validate:"dive,wiretext"`
}

// EditUserOption is the body of PATCH /user/settings. An absent Visibility
// leaves the setting unchanged.
type EditUserOption struct {
	FullName   *string                       `json:"full_name,omitempty" yaml:"full_name,omitempty" toml:"full_name,omitempty"`
	Visibility wiretext.Nullable[Visibility] `json:"visibility" yaml:"visibility" toml:"visibility"`
}

// PullReview is a pull request review as returned by the API.
type PullReview struct {
	ID          int64           `json:"id" yaml:"id" toml:"id"`
	State       ReviewStateType `json:"state" yaml:"state" toml:"state"`
	Body        string          `json:"body" yaml:"body" toml:"body"`
	CommitID    string          `json:"commit_id" yaml:"commit_id" toml:"commit_id"`
	Stale       bool            `json:"stale" yaml:"stale" toml:"stale"`
	Official    bool            `json:"official" yaml:"official" toml:"official"`
	Dismissed   bool            `json:"dismissed" yaml:"dismissed" toml:"dismissed"`
	SubmittedAt time.Time       `json:"submitted_at" yaml:"submitted_at" toml:"submitted_at"`
}
