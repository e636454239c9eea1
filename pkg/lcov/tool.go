package lcov

import (
	"context"
	"path/filepath"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

type tool struct {
	execManager core.ExecutionManager
	workDir     string
	logger      lumber.Logger
}

// NewTool returns an LcovTool running the binaries in workDir.
func NewTool(execManager core.ExecutionManager, workDir string, logger lumber.Logger) core.LcovTool {
	return &tool{execManager: execManager, workDir: workDir, logger: logger}
}

// Merge runs a single lcov call over all traces.
func (t *tool) Merge(ctx context.Context, traces []string, tmpDir string) (string, error) {
	aggregate := filepath.Join(tmpDir, global.AggregateTraceFileName)
	if _, err := t.execManager.ExecuteTool(ctx, core.CoverageMerge, global.LcovBinary,
		MergeArgs(traces, aggregate), t.workDir); err != nil {
		t.logger.Errorf("failed to merge %d coverage files, error: %v", len(traces), err)
		return "", err
	}
	t.logger.Debugf("merged %d coverage files into %s", len(traces), aggregate)
	return aggregate, nil
}

func (t *tool) Render(ctx context.Context, traces []string, outputDir string) error {
	if _, err := t.execManager.ExecuteTool(ctx, core.RenderHTML, global.GenhtmlBinary,
		RenderArgs(traces, outputDir), t.workDir); err != nil {
		t.logger.Errorf("failed to render html report, error: %v", err)
		return err
	}
	return nil
}

func (t *tool) Summary(ctx context.Context, aggregate string) ([]byte, error) {
	return t.execManager.ExecuteTool(ctx, core.Summary, global.LcovBinary, SummaryArgs(aggregate), t.workDir)
}

func (t *tool) List(ctx context.Context, aggregate string) ([]byte, error) {
	return t.execManager.ExecuteTool(ctx, core.List, global.LcovBinary, ListArgs(aggregate), t.workDir)
}
