// Package reporter posts the coverage report as a pull request or commit comment.
package reporter

import (
	"context"
	"fmt"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

type reporter struct {
	gitProvider   core.GitProvider
	updateComment bool
	logger        lumber.Logger
}

// New returns a Reporter posting through gitProvider. With updateComment the
// previous report on a pull request is edited instead of adding a new comment.
func New(gitProvider core.GitProvider, updateComment bool, logger lumber.Logger) core.Reporter {
	return &reporter{gitProvider: gitProvider, updateComment: updateComment, logger: logger}
}

// Report posts report once. Failures are logged and returned in the result,
// they never fail the run.
func (r *reporter) Report(ctx context.Context, runCtx *core.RunContext, report *core.CoverageReport) core.ReportResult {
	body := Body(runCtx, report)
	var result core.ReportResult

	switch {
	case runCtx.IsPullRequest():
		result = r.reportPullRequest(ctx, runCtx, report, body)
	case runCtx.SHA == "":
		// nothing to attach a commit comment to
		result.Target = "commit"
		result.Err = errs.ErrUnsupportedEvent
	default:
		result.Target = fmt.Sprintf("commit %s", runCtx.ShortSHA(global.ShortSHALength))
		result.URL, result.Err = r.gitProvider.CreateCommitComment(ctx, runCtx.Owner, runCtx.Repo, runCtx.SHA, body)
	}

	if result.Err != nil {
		r.logger.Warnf("failed to post coverage report on %s, error: %v", result.Target, result.Err)
		return result
	}
	result.Posted = true
	r.logger.Infof("coverage report posted on %s: %s", result.Target, result.URL)
	return result
}

func (r *reporter) reportPullRequest(ctx context.Context, runCtx *core.RunContext, report *core.CoverageReport, body string) core.ReportResult {
	result := core.ReportResult{Target: fmt.Sprintf("pull request #%d", runCtx.PRNumber)}
	if r.updateComment {
		commentID, err := r.gitProvider.FindPullRequestComment(ctx, runCtx.Owner, runCtx.Repo, runCtx.PRNumber,
			Marker(runCtx.RepoSlug(), report.Title))
		if err != nil {
			r.logger.Warnf("failed to look up previous coverage report, posting a new one, error: %v", err)
		}
		if err == nil && commentID != 0 {
			result.URL, result.Err = r.gitProvider.UpdatePullRequestComment(ctx, runCtx.Owner, runCtx.Repo, commentID, body)
			result.Updated = result.Err == nil
			return result
		}
	}
	result.URL, result.Err = r.gitProvider.CreatePullRequestComment(ctx, runCtx.Owner, runCtx.Repo, runCtx.PRNumber, body)
	return result
}
