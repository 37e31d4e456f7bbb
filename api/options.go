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
	"strings"
	"time"

	"rivaas.dev/forgejo/query"
)

// CommaList is a list parameter the API expects as a single comma-separated
// value.
type CommaList []string

// MarshalText joins the items with commas.
func (l CommaList) MarshalText() ([]byte, error) {
	return []byte(strings.Join(l, ",")), nil
}

// UnmarshalText splits text on commas. Empty text yields an empty list.
func (l *CommaList) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = nil
		return nil
	}
	*l = strings.Split(string(text), ",")

	return nil
}

// IsNull reports whether the list is empty, in which case no parameter is
// sent.
func (l CommaList) IsNull() bool {
	return len(l) == 0
}

// ListIssuesOptions filters GET /repos/{owner}/{repo}/issues.
type ListIssuesOptions struct {
	State       StateType  `query:"state,omitempty" json:"state,omitempty" validate:"omitempty,wiretext"`
	Type        IssueType  `query:"type,omitempty" json:"type,omitempty" validate:"omitempty,wiretext"`
	Labels      CommaList  `query:"labels" json:"labels,omitempty" validate:"dive,required"`
	Milestones  CommaList  `query:"milestones" json:"milestones,omitempty"`
	Keyword     string     `query:"q,omitempty" json:"q,omitempty"`
	Since       *time.Time `query:"since" json:"since,omitempty"`
	Before      *time.Time `query:"before" json:"before,omitempty"`
	CreatedBy   string     `query:"created_by,omitempty" json:"created_by,omitempty"`
	AssignedBy  string     `query:"assigned_by,omitempty" json:"assigned_by,omitempty"`
	MentionedBy string     `query:"mentioned_by,omitempty" json:"mentioned_by,omitempty"`
	query.PagingOptions
}

// SearchReposOptions filters GET /repos/search.
type SearchReposOptions struct {
	Keyword            string       `query:"q,omitempty" json:"q,omitempty"`
	Topic              bool         `query:"topic,omitempty" json:"topic,omitempty"`
	IncludeDescription bool         `query:"includeDesc,omitempty" json:"includeDesc,omitempty"`
	OwnerID            int64        `query:"uid,omitempty" json:"uid,omitempty" validate:"gte=0"`
	PriorityOwnerID    int64        `query:"priority_owner_id,omitempty" json:"priority_owner_id,omitempty" validate:"gte=0"`
	TeamID             int64        `query:"team_id,omitempty" json:"team_id,omitempty" validate:"gte=0"`
	StarredBy          int64        `query:"starredBy,omitempty" json:"starredBy,omitempty" validate:"gte=0"`
	Private            *bool        `query:"private" json:"private,omitempty"`
	IsPrivate          *bool        `query:"is_private" json:"is_private,omitempty"`
	Template           *bool        `query:"template" json:"template,omitempty"`
	Archived           *bool        `query:"archived" json:"archived,omitempty"`
	Mode               string       `query:"mode,omitempty" json:"mode,omitempty" validate:"omitempty,oneof=fork source mirror collaborative"`
	Exclusive          bool         `query:"exclusive,omitempty" json:"exclusive,omitempty"`
	Sort               RepoSortType `query:"sort,omitempty" json:"sort,omitempty" validate:"omitempty,wiretext"`
	Order              SortOrder    `query:"order,omitempty" json:"order,omitempty" validate:"omitempty,wiretext"`
	query.PagingOptions
}

// ListNotificationsOptions filters GET /notifications and
// GET /repos/{owner}/{repo}/notifications.
type ListNotificationsOptions struct {
	All          bool                `query:"all,omitempty" json:"all,omitempty"`
	StatusTypes  []NotifyStatus      `query:"status-types" json:"status-types,omitempty" validate:"dive,wiretext"`
	SubjectTypes []NotifySubjectType `query:"subject-type" json:"subject-type,omitempty" validate:"dive,wiretext"`
	Since        *time.Time          `query:"since" json:"since,omitempty"`
	Before       *time.Time          `query:"before" json:"before,omitempty"`
	query.PagingOptions
}

// ListCommitStatusesOptions filters GET /repos/{owner}/{repo}/statuses/{sha}.
type ListCommitStatusesOptions struct {
	Sort  CommitStatusSort  `query:"sort,omitempty" json:"sort,omitempty" validate:"omitempty,wiretext"`
	State CommitStatusState `query:"state,omitempty" json:"state,omitempty" validate:"omitempty,wiretext"`
	query.PagingOptions
}
