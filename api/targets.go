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
	"net/url"
	"strconv"
	"strings"
	"time"

	"rivaas.dev/forgejo/query"
)

// repoPath joins escaped path segments under repos/{owner}/{repo}.
func repoPath(owner, repo string, rest ...string) string {
	segs := make([]string, 0, 3+len(rest))
	segs = append(segs, "repos", url.PathEscape(owner), url.PathEscape(repo))
	for _, s := range rest {
		segs = append(segs, url.PathEscape(s))
	}

	return strings.Join(segs, "/")
}

// target validates opts and renders them after path.
func target(path string, opts any) (string, error) {
	if err := Validate(opts); err != nil {
		return "", err
	}

	b := query.New(path).Fields(opts)
	if err := b.Err(); err != nil {
		return "", err
	}

	return b.String(), nil
}

// IssuesTarget returns the target listing the issues of a repository.
func IssuesTarget(owner, repo string, opts ListIssuesOptions) (string, error) {
	return target(repoPath(owner, repo, "issues"), opts)
}

// SearchReposTarget returns the repository search target.
func SearchReposTarget(opts SearchReposOptions) (string, error) {
	return target("repos/search", opts)
}

// NotificationsTarget returns the target listing the current user's
// notifications.
func NotificationsTarget(opts ListNotificationsOptions) (string, error) {
	return target("notifications", opts)
}

// RepoNotificationsTarget returns the target listing the current user's
// notifications for one repository.
func RepoNotificationsTarget(owner, repo string, opts ListNotificationsOptions) (string, error) {
	return target(repoPath(owner, repo, "notifications"), opts)
}

// CommitStatusesTarget returns the target listing the statuses of a commit,
// branch or tag.
func CommitStatusesTarget(owner, repo, ref string, opts ListCommitStatusesOptions) (string, error) {
	return target(repoPath(owner, repo, "statuses", ref), opts)
}

// PullReviewsTarget returns the target listing the reviews of a pull
// request.
func PullReviewsTarget(owner, repo string, index int64, paging query.PagingOptions) string {
	return query.New(repoPath(owner, repo, "pulls", strconv.FormatInt(index, 10), "reviews")).
		Paging(paging).
		String()
}

// CommitTarget returns the target of a single commit. stat toggles the
// diff statistics in the response.
func CommitTarget(owner, repo, sha string, stat bool) string {
	return query.WithQuery(repoPath(owner, repo, "git", "commits", sha), "stat", query.Bool(stat))
}

// MarkNotificationsTarget returns the target that moves notifications to
// toStatus. A nil lastReadAt marks everything up to now.
func MarkNotificationsTarget(lastReadAt *time.Time, from []NotifyStatus, toStatus NotifyStatus) string {
	b := query.New("notifications").Param("last_read_at", query.Opt(lastReadAt))
	for _, s := range from {
		b.Param("status-types", query.Text(s))
	}

	return b.Param("to-status", query.Text(toStatus)).String()
}
