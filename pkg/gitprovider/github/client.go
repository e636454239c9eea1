// Package github talks to the GitHub REST API on behalf of the reporter.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/cenkalti/backoff/v4"
	gh "github.com/google/go-github/v59/github"
)

type client struct {
	api        *gh.Client
	retries    int
	newBackOff func() backoff.BackOff
	logger     lumber.Logger
}

// New returns a GitProvider for the API at apiURL authenticated with token.
// Failed calls are retried up to retries times on server errors and rate limits.
func New(token, apiURL string, retries int, logger lumber.Logger) (core.GitProvider, error) {
	api := gh.NewClient(&http.Client{Timeout: global.DefaultAPITimeout}).WithAuthToken(token)
	if apiURL != "" && apiURL != global.DefaultAPIURL {
		baseURL, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, err
		}
		api.BaseURL = baseURL
	}
	api.UserAgent = "lcov-reporter/" + global.Version
	return &client{
		api:        api,
		retries:    retries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		logger:     logger,
	}, nil
}

// ListChangedFiles walks every page of the pull request files listing.
func (c *client) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]string, error) {
	opts := &gh.ListOptions{PerPage: global.ChangedFilesPerPage}
	var changedFiles []string
	for page := 0; page < global.MaxChangedFilePages; page++ {
		var files []*gh.CommitFile
		var resp *gh.Response
		err := c.retry(ctx, "list pull request files", retryable, func() (_ *gh.Response, err error) {
			files, resp, err = c.api.PullRequests.ListFiles(ctx, owner, repo, number, opts)
			return resp, err
		})
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			changedFiles = append(changedFiles, file.GetFilename())
		}
		// the page only moves forward once it was read
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return changedFiles, nil
}

// CreatePullRequestComment posts a new comment. Server errors are not retried
// since the comment may already be stored.
func (c *client) CreatePullRequestComment(ctx context.Context, owner, repo string, number int, body string) (string, error) {
	var comment *gh.IssueComment
	err := c.retry(ctx, "create pull request comment", rejected, func() (resp *gh.Response, err error) {
		comment, resp, err = c.api.Issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{Body: gh.String(body)})
		return resp, err
	})
	if err != nil {
		return "", err
	}
	return comment.GetHTMLURL(), nil
}

func (c *client) CreateCommitComment(ctx context.Context, owner, repo, sha, body string) (string, error) {
	var comment *gh.RepositoryComment
	err := c.retry(ctx, "create commit comment", rejected, func() (resp *gh.Response, err error) {
		comment, resp, err = c.api.Repositories.CreateComment(ctx, owner, repo, sha, &gh.RepositoryComment{Body: gh.String(body)})
		return resp, err
	})
	if err != nil {
		return "", err
	}
	return comment.GetHTMLURL(), nil
}

// FindPullRequestComment returns the id of the oldest comment whose body contains marker.
func (c *client) FindPullRequestComment(ctx context.Context, owner, repo string, number int, marker string) (int64, error) {
	opts := &gh.IssueListCommentsOptions{ListOptions: gh.ListOptions{PerPage: global.ChangedFilesPerPage}}
	for page := 0; page < global.MaxChangedFilePages; page++ {
		var comments []*gh.IssueComment
		var resp *gh.Response
		err := c.retry(ctx, "list pull request comments", retryable, func() (_ *gh.Response, err error) {
			comments, resp, err = c.api.Issues.ListComments(ctx, owner, repo, number, opts)
			return resp, err
		})
		if err != nil {
			return 0, err
		}
		for _, comment := range comments {
			if strings.Contains(comment.GetBody(), marker) {
				return comment.GetID(), nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return 0, nil
}

func (c *client) UpdatePullRequestComment(ctx context.Context, owner, repo string, commentID int64, body string) (string, error) {
	var comment *gh.IssueComment
	err := c.retry(ctx, "update pull request comment", retryable, func() (resp *gh.Response, err error) {
		comment, resp, err = c.api.Issues.EditComment(ctx, owner, repo, commentID, &gh.IssueComment{Body: gh.String(body)})
		return resp, err
	})
	if err != nil {
		return "", err
	}
	return comment.GetHTMLURL(), nil
}

// retry runs call until it succeeds, canRetry rejects the error or the retries are used up.
func (c *client) retry(ctx context.Context, operation string, canRetry func(*gh.Response, error) bool,
	call func() (*gh.Response, error)) error {
	var b backoff.BackOff = &backoff.StopBackOff{}
	if c.retries > 0 {
		b = backoff.WithMaxRetries(c.newBackOff(), uint64(c.retries))
	}
	return backoff.RetryNotify(func() error {
		resp, err := call()
		if err != nil && !canRetry(resp, err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		c.logger.Warnf("%s failed, retrying in %s, error: %v", operation, wait, err)
	})
}

// retryable decides for idempotent calls: server errors, missing responses
// and rate limits.
func retryable(resp *gh.Response, err error) bool {
	if rejected(resp, err) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if resp == nil {
		return true
	}
	return resp.StatusCode >= http.StatusInternalServerError
}

// rejected reports whether the API turned the request down without processing
// it, the only case where a non idempotent call is sent again.
func rejected(resp *gh.Response, err error) bool {
	var rateLimit *gh.RateLimitError
	var abuse *gh.AbuseRateLimitError
	if errors.As(err, &rateLimit) || errors.As(err, &abuse) {
		return true
	}
	return resp != nil && resp.StatusCode == http.StatusTooManyRequests
}
