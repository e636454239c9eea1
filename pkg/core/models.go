// Package core is the backbone of the reporter,
// it defines the run lifecycle and the services plugged into it.
package core

import "fmt"

// CommandType defines type of command
type CommandType string

// Types of Command string
const (
	InstallLcov   CommandType = "installlcov"
	CoverageMerge CommandType = "coveragemerge"
	RenderHTML    CommandType = "renderhtml"
	Summary       CommandType = "summary"
	List          CommandType = "list"
	Zstd          CommandType = "zstd"
)

// EventType represents the workflow trigger
type EventType string

const (
	// EventPush represents the push event.
	EventPush EventType = "push"
	// EventPullRequest represents the pull request event.
	EventPullRequest EventType = "pull_request"
	// EventOther represents every other trigger.
	EventOther EventType = "other"
)

// RunContext describes the CI run being reported on. It is built once at
// startup and never mutated.
type RunContext struct {
	EventName   string
	EventType   EventType
	Owner       string
	Repo        string
	SHA         string
	Ref         string
	HeadRef     string
	BaseRef     string
	PRNumber    int
	RunID       string
	RunNumber   int
	Workflow    string
	ServerURL   string
	APIURL      string
	ActionsMode bool
}

// IsPullRequest reports whether the run was triggered by a pull request.
func (r *RunContext) IsPullRequest() bool {
	return r.EventType == EventPullRequest
}

// RepoSlug returns owner/repo.
func (r *RunContext) RepoSlug() string {
	return r.Owner + "/" + r.Repo
}

// ShortSHA returns the abbreviated commit sha shown in reports.
func (r *RunContext) ShortSHA(length int) string {
	if len(r.SHA) <= length {
		return r.SHA
	}
	return r.SHA[:length]
}

// CommitURL returns the web URL of the commit under report.
func (r *RunContext) CommitURL() string {
	return fmt.Sprintf("%s/%s/commit/%s", r.ServerURL, r.RepoSlug(), r.SHA)
}

// RunURL returns the web URL of the workflow run.
func (r *RunContext) RunURL() string {
	return fmt.Sprintf("%s/%s/actions/runs/%s", r.ServerURL, r.RepoSlug(), r.RunID)
}

// CoverageReport is the content posted as a comment.
type CoverageReport struct {
	Title         string
	Summary       string
	Detail        string
	TotalCoverage float64
	ErrorMessage  string
}

// ReportResult is the outcome of posting a report. Posting is best effort,
// so a failure is carried in Err instead of aborting the run.
type ReportResult struct {
	Posted  bool
	Updated bool
	Target  string
	URL     string
	Err     error
}
