package lcov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeArgs(t *testing.T) {
	got := MergeArgs([]string{"a.info", "b/c.info"}, "/tmp/x/lcov.info")
	want := []string{
		"--add-tracefile", "a.info",
		"--add-tracefile", "b/c.info",
		"--output-file", "/tmp/x/lcov.info",
		"--rc", "lcov_branch_coverage=1",
	}
	assert.Equal(t, want, got)
}

func TestRenderArgs(t *testing.T) {
	got := RenderArgs([]string{"a.info", "b.info"}, "/tmp/x/html")
	want := []string{
		"a.info", "b.info",
		"--rc", "lcov_branch_coverage=1",
		"--no-source",
		"--synthesize-missing",
		"--output-directory", "/tmp/x/html",
	}
	assert.Equal(t, want, got)
}

func TestSummaryAndListArgs(t *testing.T) {
	assert.Equal(t, []string{"--summary", "/tmp/x/lcov.info", "--rc", "lcov_branch_coverage=1"},
		SummaryArgs("/tmp/x/lcov.info"))
	assert.Equal(t, []string{"--list", "/tmp/x/lcov.info", "--list-full-path", "--rc", "lcov_branch_coverage=1"},
		ListArgs("/tmp/x/lcov.info"))
}
