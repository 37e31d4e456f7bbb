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

//go:build !integration

package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/forgejo/api"
	"rivaas.dev/forgejo/query"
	"rivaas.dev/forgejo/wiretext"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        any
		wantPath string
		wantCode string
	}{
		{
			name:     "undeclared string enum",
			v:        api.SearchReposOptions{Order: api.SortOrder("sideways")},
			wantPath: "order",
			wantCode: "tag.wiretext",
		},
		{
			name:     "undeclared int enum",
			v:        &api.ListCommitStatusesOptions{State: api.CommitStatusState(42)},
			wantPath: "state",
			wantCode: "tag.wiretext",
		},
		{
			name:     "undeclared slice element",
			v:        api.ListNotificationsOptions{SubjectTypes: []api.NotifySubjectType{api.NotifySubjectPull, 0}},
			wantPath: "subject-type[1]",
			wantCode: "tag.wiretext",
		},
		{
			name:     "mode outside set",
			v:        api.SearchReposOptions{Mode: "archive"},
			wantPath: "mode",
			wantCode: "tag.oneof",
		},
		{
			name:     "negative owner id",
			v:        api.SearchReposOptions{OwnerID: -1},
			wantPath: "uid",
			wantCode: "tag.gte",
		},
		{
			name:     "empty label",
			v:        api.ListIssuesOptions{Labels: api.CommaList{"bug", ""}},
			wantPath: "labels[1]",
			wantCode: "tag.required",
		},
		{
			name:     "invalid status url",
			v:        api.CreateStatusOption{State: api.CommitStatusSuccess, TargetURL: "not a url"},
			wantPath: "target_url",
			wantCode: "tag.url",
		},
		{
			name:     "missing merge style",
			v:        api.MergePullRequestOption{},
			wantPath: "Do",
			wantCode: "tag.wiretext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := api.Validate(tt.v)

			var verr *api.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantPath, verr.Fields[0].Path)
			assert.Equal(t, tt.wantCode, verr.Fields[0].Code)
			assert.True(t, verr.HasCode(tt.wantCode))
			assert.Equal(t, "validation_error", verr.Code())
			assert.Contains(t, err.Error(), tt.wantPath)
		})
	}
}

func TestValidate_NegativePaging(t *testing.T) {
	t.Parallel()

	err := api.Validate(api.ListIssuesOptions{PagingOptions: query.PagingOptions{Page: -1, Limit: -5}})

	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.True(t, verr.HasCode("tag.gte"))
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	valid := []any{
		api.ListIssuesOptions{},
		api.ListIssuesOptions{State: api.StateAll, Type: api.IssueTypeIssue, Labels: api.CommaList{"a"}},
		api.SearchReposOptions{Mode: "fork", Sort: api.RepoSortAlpha, Order: api.SortOrderAsc},
		api.ListNotificationsOptions{StatusTypes: []api.NotifyStatus{api.NotifyStatusRead}},
		api.CreateStatusOption{State: api.CommitStatusPending, TargetURL: "https://example.com"},
		api.EditUserOption{Visibility: wiretext.Some(api.VisibilityPublic)},
	}

	for _, v := range valid {
		assert.NoError(t, api.Validate(v))
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	t.Parallel()

	err := api.Validate(42)
	require.Error(t, err)

	var verr *api.ValidationError
	assert.NotErrorAs(t, err, &verr)
}
