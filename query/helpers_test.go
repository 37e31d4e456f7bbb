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

package query_test

import (
	"errors"

	"rivaas.dev/forgejo/wiretext"
)

type issueState string

const (
	issueStateOpen   issueState = "open"
	issueStateClosed issueState = "closed"
	issueStateAll    issueState = "all"
)

var issueStates = wiretext.Register(
	wiretext.Member[issueState]{Value: issueStateOpen, Name: "open"},
	wiretext.Member[issueState]{Value: issueStateClosed, Name: "closed"},
	wiretext.Member[issueState]{Value: issueStateAll, Name: "all"},
)

func (s issueState) MarshalText() ([]byte, error)      { return issueStates.MarshalText(s) }
func (s *issueState) UnmarshalText(text []byte) error { return issueStates.UnmarshalText(s, text) }

// sortKey uses an override and is rendered without a TextMarshaler, through
// the factory only.
type sortKey int

const (
	sortKeyCreated sortKey = iota + 1
	sortKeyRecentUpdate
)

var _ = wiretext.Register(
	wiretext.Member[sortKey]{Value: sortKeyCreated, Name: "created"},
	wiretext.Member[sortKey]{Value: sortKeyRecentUpdate, Name: "recent_update", Override: "recentupdate"},
)

var errBrokenMarshaler = errors.New("broken marshaler")

type brokenMarshaler struct{}

func (brokenMarshaler) MarshalText() ([]byte, error) { return nil, errBrokenMarshaler }
