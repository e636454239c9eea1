package runcontext

import (
	"path/filepath"
	"testing"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) LookupFunc {
	return func(key string) string { return values[key] }
}

func baseEnv(eventName, eventPath string) map[string]string {
	return map[string]string{
		EnvEventName:  eventName,
		EnvEventPath:  eventPath,
		EnvRepository: "octo/widgets",
		EnvSHA:        "fedcba9876543210fedcba9876543210fedcba98",
		EnvRef:        "refs/heads/main",
		EnvRunID:      "4242",
		EnvRunNumber:  "17",
		EnvWorkflow:   "CI",
		EnvActions:    "true",
	}
}

func TestLoad_PullRequest(t *testing.T) {
	runCtx, err := Load(env(baseEnv("pull_request", testutils.Path(testutils.PullRequestEvent))))
	require.NoError(t, err)

	assert.Equal(t, core.EventPullRequest, runCtx.EventType)
	assert.True(t, runCtx.IsPullRequest())
	assert.Equal(t, "abcdef1234567890abcdef1234567890abcdef12", runCtx.SHA)
	assert.Equal(t, "feature/cache", runCtx.HeadRef)
	assert.Equal(t, "main", runCtx.BaseRef)
	assert.Equal(t, 7, runCtx.PRNumber)
	assert.Equal(t, "octo", runCtx.Owner)
	assert.Equal(t, "widgets", runCtx.Repo)
	assert.Equal(t, 17, runCtx.RunNumber)
	assert.Equal(t, "CI", runCtx.Workflow)
	assert.True(t, runCtx.ActionsMode)
	assert.Equal(t, "https://github.com/octo/widgets/actions/runs/4242", runCtx.RunURL())
	assert.Equal(t, "abcdef1", runCtx.ShortSHA(global.ShortSHALength))
}

func TestLoad_Push(t *testing.T) {
	values := baseEnv("push", testutils.Path(testutils.PushEvent))
	values[EnvServerURL] = "https://ghe.example.com/"
	values[EnvAPIURL] = "https://ghe.example.com/api/v3"

	runCtx, err := Load(env(values))
	require.NoError(t, err)

	assert.Equal(t, core.EventPush, runCtx.EventType)
	assert.False(t, runCtx.IsPullRequest())
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", runCtx.SHA)
	assert.Equal(t, "0123456", runCtx.ShortSHA(global.ShortSHALength))
	assert.Equal(t, "refs/heads/main", runCtx.Ref)
	assert.Equal(t, "https://ghe.example.com", runCtx.ServerURL)
	assert.Equal(t, "https://ghe.example.com/api/v3", runCtx.APIURL)
	assert.Equal(t, "https://ghe.example.com/octo/widgets/commit/0123456789abcdef0123456789abcdef01234567", runCtx.CommitURL())
}

func TestLoad_OtherEvent(t *testing.T) {
	runCtx, err := Load(env(baseEnv("workflow_dispatch", testutils.Path(testutils.WorkflowDispatch))))
	require.NoError(t, err)
	assert.Equal(t, core.EventOther, runCtx.EventType)
	assert.Equal(t, "fedcba9876543210fedcba9876543210fedcba98", runCtx.SHA)
	assert.Equal(t, global.DefaultServerURL, runCtx.ServerURL)
	assert.Equal(t, global.DefaultAPIURL, runCtx.APIURL)
}

func TestLoad_PullRequestTargetIsCommit(t *testing.T) {
	runCtx, err := Load(env(baseEnv("pull_request_target", testutils.Path(testutils.PullRequestEvent))))
	require.NoError(t, err)
	assert.Equal(t, core.EventOther, runCtx.EventType)
	assert.False(t, runCtx.IsPullRequest())
	assert.Zero(t, runCtx.PRNumber)
	assert.Equal(t, "fedcba9876543210fedcba9876543210fedcba98", runCtx.SHA)
}

func TestLoad_RepositoryFromPayload(t *testing.T) {
	values := baseEnv("push", testutils.Path(testutils.PushEvent))
	delete(values, EnvRepository)

	runCtx, err := Load(env(values))
	require.NoError(t, err)
	assert.Equal(t, "octo/widgets", runCtx.RepoSlug())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr error
	}{
		{"missing payload path", func(m map[string]string) { delete(m, EnvEventPath) }, errs.ErrMissingEventPayload},
		{"unreadable payload", func(m map[string]string) { m[EnvEventPath] = filepath.Join(t.TempDir(), "event.json") }, errs.ErrMissingEventPayload},
		{"invalid repository", func(m map[string]string) { m[EnvRepository] = "widgets" }, errs.ErrInvalidRepository},
		{"no repository", func(m map[string]string) {
			delete(m, EnvRepository)
			m[EnvEventName] = "schedule"
		}, errs.ErrInvalidRepository},
		{"invalid run number", func(m map[string]string) { m[EnvRunNumber] = "seventeen" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := baseEnv("pull_request", testutils.Path(testutils.PullRequestEvent))
			tt.mutate(values)
			_, err := Load(env(values))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
