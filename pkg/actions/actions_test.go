package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_SetFailed(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{
			"The code coverage is too low: 75. Expected at least 80.",
			"::error::The code coverage is too low: 75. Expected at least 80.\n",
		},
		{"line one\nline two", "::error::line one%0Aline two\n"},
		{"100% done\r", "::error::100%25 done%0D\n"},
	}
	for _, tt := range tests {
		var stdout bytes.Buffer
		logger, _ := testutils.GetObservedLogger()
		New(&stdout, "", logger).SetFailed(tt.message)
		assert.Equal(t, tt.want, stdout.String())
	}
}

func TestOutput_SetOutput(t *testing.T) {
	logger, logs := testutils.GetObservedLogger()
	file := filepath.Join(t.TempDir(), "output")
	o := New(&bytes.Buffer{}, file, logger)

	require.NoError(t, o.SetOutput("total-coverage", "75.00"))
	require.NoError(t, o.SetOutput("comment-posted", "true"))
	require.NoError(t, o.SetOutput("detail", "a\nb"))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	pattern := regexp.MustCompile(`^total-coverage=75\.00\ncomment-posted=true\ndetail<<(ghadelimiter_[0-9a-f-]{36})\na\nb\n(ghadelimiter_[0-9a-f-]{36})\n$`)
	matches := pattern.FindStringSubmatch(string(data))
	require.Len(t, matches, 3, string(data))
	assert.Equal(t, matches[1], matches[2])
	assert.Equal(t, 3, logs.FilterMessageSnippet("output ").Len())
}

func TestOutput_SetOutputWithoutFile(t *testing.T) {
	logger, logs := testutils.GetObservedLogger()
	require.NoError(t, New(&bytes.Buffer{}, "", logger).SetOutput("total-coverage", "60.00"))
	assert.Equal(t, 1, logs.FilterMessage("output total-coverage=60.00").Len())

	err := New(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "output"), logger).SetOutput("a", "b")
	assert.Error(t, err)
}
