package lcov

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/LambdaTest/lcov-reporter/testutils/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTool_Merge(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	tmpDir := t.TempDir()
	aggregate := filepath.Join(tmpDir, "lcov.info")
	traces := []string{"a.info", "b.info"}

	execManager := mocks.NewExecutionManager(t)
	execManager.On("ExecuteTool", context.TODO(), core.CoverageMerge, "lcov", MergeArgs(traces, aggregate), "/work").
		Return([]byte("Combining tracefiles."), nil).Once()

	got, err := NewTool(execManager, "/work", logger).Merge(context.TODO(), traces, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, aggregate, got)
}

func TestTool_MergeFailure(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	execManager := mocks.NewExecutionManager(t)
	execManager.On("ExecuteTool", context.TODO(), core.CoverageMerge, "lcov", MergeArgs([]string{"a.info"}, "/tmp/lcov.info"), "/work").
		Return(nil, errors.New("exit status 255")).Once()

	got, err := NewTool(execManager, "/work", logger).Merge(context.TODO(), []string{"a.info"}, "/tmp")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestTool_RenderSummaryList(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	execManager := mocks.NewExecutionManager(t)
	traces := []string{"a.info"}
	execManager.On("ExecuteTool", context.TODO(), core.RenderHTML, "genhtml", RenderArgs(traces, "/tmp/html"), ".").
		Return([]byte{}, nil).Once()
	execManager.On("ExecuteTool", context.TODO(), core.Summary, "lcov", SummaryArgs("/tmp/lcov.info"), ".").
		Return([]byte("summary"), nil).Once()
	execManager.On("ExecuteTool", context.TODO(), core.List, "lcov", ListArgs("/tmp/lcov.info"), ".").
		Return([]byte("list"), nil).Once()

	tool := NewTool(execManager, ".", logger)
	require.NoError(t, tool.Render(context.TODO(), traces, "/tmp/html"))

	summary, err := tool.Summary(context.TODO(), "/tmp/lcov.info")
	require.NoError(t, err)
	assert.Equal(t, "summary", string(summary))

	list, err := tool.List(context.TODO(), "/tmp/lcov.info")
	require.NoError(t, err)
	assert.Equal(t, "list", string(list))
}
