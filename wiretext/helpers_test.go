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

package wiretext_test

import "rivaas.dev/forgejo/wiretext"

// mergeStyle is registered in the default registry.
type mergeStyle int

const (
	mergeStyleMerge mergeStyle = iota
	mergeStyleRebase
	mergeStyleRebaseMerge
	mergeStyleSquash
	mergeStyleFastForwardOnly
)

var mergeStyles = wiretext.Register(
	wiretext.Member[mergeStyle]{Value: mergeStyleMerge, Name: "merge"},
	wiretext.Member[mergeStyle]{Value: mergeStyleRebase, Name: "rebase"},
	wiretext.Member[mergeStyle]{Value: mergeStyleRebaseMerge, Name: "rebase_merge", Override: "rebase-merge"},
	wiretext.Member[mergeStyle]{Value: mergeStyleSquash, Name: "squash"},
	wiretext.Member[mergeStyle]{Value: mergeStyleFastForwardOnly, Name: "fast_forward_only", Override: "fast-forward-only"},
)

func (s mergeStyle) String() string                    { return mergeStyles.Encode(s) }
func (s mergeStyle) MarshalText() ([]byte, error)      { return mergeStyles.MarshalText(s) }
func (s *mergeStyle) UnmarshalText(text []byte) error { return mergeStyles.UnmarshalText(s, text) }

// reviewState is a string-backed enum used with isolated registries.
type reviewState string

const (
	reviewApproved       reviewState = "approved"
	reviewRequestChanges reviewState = "request_changes"
	reviewComment        reviewState = "comment"
)

func reviewMembers() []wiretext.Member[reviewState] {
	return []wiretext.Member[reviewState]{
		{Value: reviewApproved, Name: "approved", Override: "APPROVED"},
		{Value: reviewRequestChanges, Name: "request_changes", Override: "REQUEST_CHANGES"},
		{Value: reviewComment, Name: "comment", Override: "COMMENT"},
	}
}
