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

import "rivaas.dev/forgejo/wiretext"

// StateType filters issues and pull requests by state.
type StateType string

// StateType values.
const (
	StateOpen   StateType = "open"
	StateClosed StateType = "closed"
	StateAll    StateType = "all"
)

var stateTypes = wiretext.Register(
	wiretext.Member[StateType]{Value: StateOpen, Name: "open"},
	wiretext.Member[StateType]{Value: StateClosed, Name: "closed"},
	wiretext.Member[StateType]{Value: StateAll, Name: "all"},
)

func (s StateType) MarshalText() ([]byte, error)      { return stateTypes.MarshalText(s) }
func (s *StateType) UnmarshalText(text []byte) error { return stateTypes.UnmarshalText(s, text) }

// IssueType restricts issue listings to issues or pull requests.
type IssueType string

// IssueType values.
const (
	IssueTypeIssue IssueType = "issues"
	IssueTypePull  IssueType = "pulls"
)

var issueTypes = wiretext.Register(
	wiretext.Member[IssueType]{Value: IssueTypeIssue, Name: "issues"},
	wiretext.Member[IssueType]{Value: IssueTypePull, Name: "pulls"},
)

func (t IssueType) MarshalText() ([]byte, error)      { return issueTypes.MarshalText(t) }
func (t *IssueType) UnmarshalText(text []byte) error { return issueTypes.UnmarshalText(t, text) }

// MergeStyle is the strategy used to merge a pull request.
type MergeStyle int

// MergeStyle values.
const (
	MergeStyleMerge MergeStyle = iota + 1
	MergeStyleRebase
	MergeStyleRebaseMerge
	MergeStyleSquash
	MergeStyleFastForwardOnly
	MergeStyleManuallyMerged
)

var mergeStyles = wiretext.Register(
	wiretext.Member[MergeStyle]{Value: MergeStyleMerge, Name: "merge"},
	wiretext.Member[MergeStyle]{Value: MergeStyleRebase, Name: "rebase"},
	wiretext.Member[MergeStyle]{Value: MergeStyleRebaseMerge, Name: "rebase_merge", Override: "rebase-merge"},
	wiretext.Member[MergeStyle]{Value: MergeStyleSquash, Name: "squash"},
	wiretext.Member[MergeStyle]{Value: MergeStyleFastForwardOnly, Name: "fast_forward_only", Override: "fast-forward-only"},
	wiretext.Member[MergeStyle]{Value: MergeStyleManuallyMerged, Name: "manually_merged", Override: "manually-merged"},
)

func (m MergeStyle) String() string                    { return mergeStyles.Encode(m) }
func (m MergeStyle) MarshalText() ([]byte, error)      { return mergeStyles.MarshalText(m) }
func (m *MergeStyle) UnmarshalText(text []byte) error { return mergeStyles.UnmarshalText(m, text) }

// ReviewStateType is the state of a pull request review.
type ReviewStateType int

// ReviewStateType values.
const (
	ReviewStateApproved ReviewStateType = iota + 1
	ReviewStatePending
	ReviewStateComment
	ReviewStateRequestChanges
	ReviewStateRequestReview
)

var reviewStates = wiretext.Register(
	wiretext.Member[ReviewStateType]{Value: ReviewStateApproved, Name: "approved", Override: "APPROVED"},
	wiretext.Member[ReviewStateType]{Value: ReviewStatePending, Name: "pending", Override: "PENDING"},
	wiretext.Member[ReviewStateType]{Value: ReviewStateComment, Name: "comment", Override: "COMMENT"},
	wiretext.Member[ReviewStateType]{Value: ReviewStateRequestChanges, Name: "request_changes", Override: "REQUEST_CHANGES"},
	wiretext.Member[ReviewStateType]{Value: ReviewStateRequestReview, Name: "request_review", Override: "REQUEST_REVIEW"},
)

func (r ReviewStateType) String() string                    { return reviewStates.Encode(r) }
func (r ReviewStateType) MarshalText() ([]byte, error)      { return reviewStates.MarshalText(r) }
func (r *ReviewStateType) UnmarshalText(text []byte) error { return reviewStates.UnmarshalText(r, text) }

// NotifySubjectType is the kind of object a notification refers to.
type NotifySubjectType int

// NotifySubjectType values.
const (
	NotifySubjectIssue NotifySubjectType = iota + 1
	NotifySubjectPull
	NotifySubjectCommit
	NotifySubjectRepository
)

var notifySubjectTypes = wiretext.Register(
	wiretext.Member[NotifySubjectType]{Value: NotifySubjectIssue, Name: "issue", Override: "Issue"},
	wiretext.Member[NotifySubjectType]{Value: NotifySubjectPull, Name: "pull", Override: "Pull"},
	wiretext.Member[NotifySubjectType]{Value: NotifySubjectCommit, Name: "commit", Override: "Commit"},
	wiretext.Member[NotifySubjectType]{Value: NotifySubjectRepository, Name: "repository", Override: "Repository"},
)

func (n NotifySubjectType) String() string               { return notifySubjectTypes.Encode(n) }
func (n NotifySubjectType) MarshalText() ([]byte, error) { return notifySubjectTypes.MarshalText(n) }
func (n *NotifySubjectType) UnmarshalText(text []byte) error {
	return notifySubjectTypes.UnmarshalText(n, text)
}

// NotifyStatus is the read state of a notification.
type NotifyStatus string

// NotifyStatus values.
const (
	NotifyStatusUnread NotifyStatus = "unread"
	NotifyStatusRead   NotifyStatus = "read"
	NotifyStatusPinned NotifyStatus = "pinned"
)

var notifyStatuses = wiretext.Register(
	wiretext.Member[NotifyStatus]{Value: NotifyStatusUnread, Name: "unread"},
	wiretext.Member[NotifyStatus]{Value: NotifyStatusRead, Name: "read"},
	wiretext.Member[NotifyStatus]{Value: NotifyStatusPinned, Name: "pinned"},
)

func (n NotifyStatus) MarshalText() ([]byte, error)      { return notifyStatuses.MarshalText(n) }
func (n *NotifyStatus) UnmarshalText(text []byte) error { return notifyStatuses.UnmarshalText(n, text) }

// Visibility is the visibility of a user or organization.
type Visibility int

// Visibility values.
const (
	VisibilityPublic Visibility = iota + 1
	VisibilityLimited
	VisibilityPrivate
)

var visibilities = wiretext.Register(
	wiretext.Member[Visibility]{Value: VisibilityPublic, Name: "public"},
	wiretext.Member[Visibility]{Value: VisibilityLimited, Name: "limited"},
	wiretext.Member[Visibility]{Value: VisibilityPrivate, Name: "private"},
)

func (v Visibility) String() string                    { return visibilities.Encode(v) }
func (v Visibility) MarshalText() ([]byte, error)      { return visibilities.MarshalText(v) }
func (v *Visibility) UnmarshalText(text []byte) error { return visibilities.UnmarshalText(v, text) }

// HookContentType is the payload encoding of a webhook.
type HookContentType string

// HookContentType values.
const (
	HookContentJSON HookContentType = "json"
	HookContentForm HookContentType = "form"
)

var hookContentTypes = wiretext.Register(
	wiretext.Member[HookContentType]{Value: HookContentJSON, Name: "json"},
	wiretext.Member[HookContentType]{Value: HookContentForm, Name: "form"},
)

func (h HookContentType) MarshalText() ([]byte, error) { return hookContentTypes.MarshalText(h) }
func (h *HookContentType) UnmarshalText(text []byte) error {
	return hookContentTypes.UnmarshalText(h, text)
}

// AccessTokenScope is a permission granted to an access token.
type AccessTokenScope int

// AccessTokenScope values.
const (
	AccessTokenScopeAll AccessTokenScope = iota + 1
	AccessTokenScopeReadActivityPub
	AccessTokenScopeWriteActivityPub
	AccessTokenScopeReadAdmin
	AccessTokenScopeWriteAdmin
	AccessTokenScopeReadIssue
	AccessTokenScopeWriteIssue
	AccessTokenScopeReadMisc
	AccessTokenScopeWriteMisc
	AccessTokenScopeReadNotification
	AccessTokenScopeWriteNotification
	AccessTokenScopeReadOrganization
	AccessTokenScopeWriteOrganization
	AccessTokenScopeReadPackage
	AccessTokenScopeWritePackage
	AccessTokenScopeReadRepository
	AccessTokenScopeWriteRepository
	AccessTokenScopeReadUser
	AccessTokenScopeWriteUser
)

var accessTokenScopes = wiretext.Register(
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeAll, Name: "all"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadActivityPub, Name: "read_activitypub", Override: "read:activitypub"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteActivityPub, Name: "write_activitypub", Override: "write:activitypub"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadAdmin, Name: "read_admin", Override: "read:admin"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteAdmin, Name: "write_admin", Override: "write:admin"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadIssue, Name: "read_issue", Override: "read:issue"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteIssue, Name: "write_issue", Override: "write:issue"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadMisc, Name: "read_misc", Override: "read:misc"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteMisc, Name: "write_misc", Override: "write:misc"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadNotification, Name: "read_notification", Override: "read:notification"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteNotification, Name: "write_notification", Override: "write:notification"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadOrganization, Name: "read_organization", Override: "read:organization"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteOrganization, Name: "write_organization", Override: "write:organization"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadPackage, Name: "read_package", Override: "read:package"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWritePackage, Name: "write_package", Override: "write:package"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadRepository, Name: "read_repository", Override: "read:repository"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteRepository, Name: "write_repository", Override: "write:repository"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeReadUser, Name: "read_user", Override: "read:user"},
	wiretext.Member[AccessTokenScope]{Value: AccessTokenScopeWriteUser, Name: "write_user", Override: "write:user"},
)

func (s AccessTokenScope) String() string               { return accessTokenScopes.Encode(s) }
func (s AccessTokenScope) MarshalText() ([]byte, error) { return accessTokenScopes.MarshalText(s) }
func (s *AccessTokenScope) UnmarshalText(text []byte) error {
	return accessTokenScopes.UnmarshalText(s, text)
}

// CommitStatusState is the state of a commit status.
type CommitStatusState int

// CommitStatusState values.
const (
	CommitStatusPending CommitStatusState = iota + 1
	CommitStatusSuccess
	CommitStatusError
	CommitStatusFailure
	CommitStatusWarning
)

var commitStatusStates = wiretext.Register(
	wiretext.Member[CommitStatusState]{Value: CommitStatusPending, Name: "pending"},
	wiretext.Member[CommitStatusState]{Value: CommitStatusSuccess, Name: "success"},
	wiretext.Member[CommitStatusState]{Value: CommitStatusError, Name: "error"},
	wiretext.Member[CommitStatusState]{Value: CommitStatusFailure, Name: "failure"},
	wiretext.Member[CommitStatusState]{Value: CommitStatusWarning, Name: "warning"},
)

func (s CommitStatusState) String() string               { return commitStatusStates.Encode(s) }
func (s CommitStatusState) MarshalText() ([]byte, error) { return commitStatusStates.MarshalText(s) }
func (s *CommitStatusState) UnmarshalText(text []byte) error {
	return commitStatusStates.UnmarshalText(s, text)
}

// CommitStatusSort orders commit status listings.
type CommitStatusSort int

// CommitStatusSort values.
const (
	CommitStatusSortOldest CommitStatusSort = iota + 1
	CommitStatusSortRecentUpdate
	CommitStatusSortLeastUpdate
	CommitStatusSortLeastIndex
	CommitStatusSortHighestIndex
)

var commitStatusSorts = wiretext.Register(
	wiretext.Member[CommitStatusSort]{Value: CommitStatusSortOldest, Name: "oldest"},
	wiretext.Member[CommitStatusSort]{Value: CommitStatusSortRecentUpdate, Name: "recent_update", Override: "recentupdate"},
	wiretext.Member[CommitStatusSort]{Value: CommitStatusSortLeastUpdate, Name: "least_update", Override: "leastupdate"},
	wiretext.Member[CommitStatusSort]{Value: CommitStatusSortLeastIndex, Name: "least_index", Override: "leastindex"},
	wiretext.Member[CommitStatusSort]{Value: CommitStatusSortHighestIndex, Name: "highest_index", Override: "highestindex"},
)

func (s CommitStatusSort) String() string               { return commitStatusSorts.Encode(s) }
func (s CommitStatusSort) MarshalText() ([]byte, error) { return commitStatusSorts.MarshalText(s) }
func (s *CommitStatusSort) UnmarshalText(text []byte) error {
	return commitStatusSorts.UnmarshalText(s, text)
}

// RepoSortType orders repository search results.
type RepoSortType string

// RepoSortType values.
const (
	RepoSortAlpha   RepoSortType = "alpha"
	RepoSortCreated RepoSortType = "created"
	RepoSortUpdated RepoSortType = "updated"
	RepoSortSize    RepoSortType = "size"
	RepoSortID      RepoSortType = "id"
)

var repoSortTypes = wiretext.Register(
	wiretext.Member[RepoSortType]{Value: RepoSortAlpha, Name: "alpha"},
	wiretext.Member[RepoSortType]{Value: RepoSortCreated, Name: "created"},
	wiretext.Member[RepoSortType]{Value: RepoSortUpdated, Name: "updated"},
	wiretext.Member[RepoSortType]{Value: RepoSortSize, Name: "size"},
	wiretext.Member[RepoSortType]{Value: RepoSortID, Name: "id"},
)

func (s RepoSortType) MarshalText() ([]byte, error)      { return repoSortTypes.MarshalText(s) }
func (s *RepoSortType) UnmarshalText(text []byte) error { return repoSortTypes.UnmarshalText(s, text) }

// SortOrder is an ascending or descending sort direction.
type SortOrder string

// SortOrder values.
const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

var sortOrders = wiretext.Register(
	wiretext.Member[SortOrder]{Value: SortOrderAsc, Name: "asc"},
	wiretext.Member[SortOrder]{Value: SortOrderDesc, Name: "desc"},
)

func (o SortOrder) MarshalText() ([]byte, error)      { return sortOrders.MarshalText(o) }
func (o *SortOrder) UnmarshalText(text []byte) error { return sortOrders.UnmarshalText(o, text) }
