// Package runcontext builds the immutable description of the CI run from the
// runner environment and the webhook payload that triggered it.
package runcontext

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	gh "github.com/google/go-github/v59/github"
)

// Environment variables set by the Actions runner
const (
	EnvEventName  = "GITHUB_EVENT_NAME"
	EnvEventPath  = "GITHUB_EVENT_PATH"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvSHA        = "GITHUB_SHA"
	EnvRef        = "GITHUB_REF"
	EnvRunID      = "GITHUB_RUN_ID"
	EnvRunNumber  = "GITHUB_RUN_NUMBER"
	EnvWorkflow   = "GITHUB_WORKFLOW"
	EnvServerURL  = "GITHUB_SERVER_URL"
	EnvAPIURL     = "GITHUB_API_URL"
	EnvActions    = "GITHUB_ACTIONS"
)

// LookupFunc returns the value of an environment variable, "" when unset.
type LookupFunc func(key string) string

// FromEnv loads the run context from the process environment.
func FromEnv() (*core.RunContext, error) {
	return Load(os.Getenv)
}

// Load builds the run context from getenv and the event payload it points to.
func Load(getenv LookupFunc) (*core.RunContext, error) {
	runCtx := &core.RunContext{
		EventName:   getenv(EnvEventName),
		EventType:   core.EventOther,
		SHA:         getenv(EnvSHA),
		Ref:         getenv(EnvRef),
		RunID:       getenv(EnvRunID),
		Workflow:    getenv(EnvWorkflow),
		ServerURL:   strings.TrimSuffix(valueOr(getenv(EnvServerURL), global.DefaultServerURL), "/"),
		APIURL:      valueOr(getenv(EnvAPIURL), global.DefaultAPIURL),
		ActionsMode: getenv(EnvActions) == "true",
	}
	if runNumber := getenv(EnvRunNumber); runNumber != "" {
		n, err := strconv.Atoi(runNumber)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvRunNumber, runNumber, err)
		}
		runCtx.RunNumber = n
	}
	if err := setRepository(runCtx, getenv(EnvRepository)); err != nil {
		return nil, err
	}

	switch runCtx.EventName {
	case "pull_request":
		event := new(gh.PullRequestEvent)
		if err := readEvent(getenv(EnvEventPath), event); err != nil {
			return nil, err
		}
		pr := event.GetPullRequest()
		runCtx.EventType = core.EventPullRequest
		runCtx.SHA = pr.GetHead().GetSHA()
		runCtx.HeadRef = pr.GetHead().GetRef()
		runCtx.BaseRef = pr.GetBase().GetRef()
		runCtx.PRNumber = event.GetNumber()
		if runCtx.PRNumber == 0 {
			runCtx.PRNumber = pr.GetNumber()
		}
		if runCtx.Owner == "" {
			if err := setRepository(runCtx, event.GetRepo().GetFullName()); err != nil {
				return nil, err
			}
		}
	case "push":
		event := new(gh.PushEvent)
		if err := readEvent(getenv(EnvEventPath), event); err != nil {
			return nil, err
		}
		runCtx.EventType = core.EventPush
		if after := event.GetAfter(); after != "" {
			runCtx.SHA = after
		}
		if runCtx.Owner == "" {
			if err := setRepository(runCtx, event.GetRepo().GetFullName()); err != nil {
				return nil, err
			}
		}
	}

	if runCtx.Owner == "" || runCtx.Repo == "" {
		return nil, fmt.Errorf("%s is not set: %w", EnvRepository, errs.ErrInvalidRepository)
	}
	return runCtx, nil
}

func readEvent(path string, v interface{}) error {
	if path == "" {
		return fmt.Errorf("%s is not set: %w", EnvEventPath, errs.ErrMissingEventPayload)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errs.ErrMissingEventPayload)
	}
	return json.Unmarshal(data, v)
}

func setRepository(runCtx *core.RunContext, slug string) error {
	if slug == "" {
		return nil
	}
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return fmt.Errorf("%q: %w", slug, errs.ErrInvalidRepository)
	}
	runCtx.Owner, runCtx.Repo = owner, repo
	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
