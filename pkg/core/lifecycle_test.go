package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/LambdaTest/lcov-reporter/testutils/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"
)

var traces = []string{"coverage/app.info", "coverage/lib.info"}

type fixture struct {
	pipeline *core.Pipeline
	logs     *observer.ObservedLogs
	tool     *mocks.LcovTool
	coverage *mocks.CoverageService
	reporter *mocks.Reporter
	output   *mocks.ActionOutput
	runCtx   *core.RunContext
	loaded   int
}

func newFixture(t *testing.T, cfg *config.ReporterConfig) *fixture {
	t.Helper()
	logger, logs := testutils.GetObservedLogger()
	pipeline, err := core.NewPipeline(cfg, logger)
	require.NoError(t, err)

	f := &fixture{
		pipeline: pipeline,
		logs:     logs,
		tool:     mocks.NewLcovTool(t),
		coverage: mocks.NewCoverageService(t),
		reporter: mocks.NewReporter(t),
		output:   mocks.NewActionOutput(t),
		runCtx:   &core.RunContext{EventType: core.EventPush, Owner: "octo", Repo: "widgets", SHA: "abcdef1234567890"},
	}

	installer := mocks.NewInstaller(t)
	installer.On("Install", mock.Anything).Return(nil).Once()
	locator := mocks.NewTraceLocator(t)
	locator.On("Locate", cfg.CoverageFiles).Return(traces, nil).Once()
	reportService := mocks.NewReportService(t)
	reportService.On("RenderAndUpload", mock.Anything, traces, mock.AnythingOfType("string"), cfg.ArtifactName).Return(nil).Once()

	pipeline.Installer = installer
	pipeline.TraceLocator = locator
	pipeline.ReportService = reportService
	pipeline.LcovTool = f.tool
	pipeline.CoverageService = f.coverage
	pipeline.Reporter = f.reporter
	pipeline.Output = f.output
	pipeline.LoadRunContext = func() (*core.RunContext, error) {
		f.loaded++
		return f.runCtx, nil
	}
	return f
}

func (f *fixture) expectMerge(total float64) {
	f.tool.On("Merge", mock.Anything, traces, mock.AnythingOfType("string")).Return("/tmp/lcov.info", nil).Once()
	f.coverage.On("TotalCoverage", "/tmp/lcov.info").Return(total, nil).Once()
}

func (f *fixture) expectReport(result core.ReportResult, report *core.CoverageReport) {
	f.coverage.On("Summary", mock.Anything, "/tmp/lcov.info").Return("Summary coverage rate:", nil).Once()
	f.coverage.On("Detail", mock.Anything, "/tmp/lcov.info", f.runCtx).Return("\n  src/a.c", nil).Once()
	f.reporter.On("Report", mock.Anything, f.runCtx, mock.AnythingOfType("*core.CoverageReport")).
		Run(func(args mock.Arguments) { *report = *args.Get(2).(*core.CoverageReport) }).
		Return(result).Once()
}

func reporterConfig(minimum, token string) *config.ReporterConfig {
	return &config.ReporterConfig{
		CoverageFiles:   "coverage/*.info",
		MinimumCoverage: minimum,
		GithubToken:     token,
		ArtifactName:    "coverage-report",
	}
}

func TestPipeline_Start_belowMinimum(t *testing.T) {
	f := newFixture(t, reporterConfig("80", "ghs_token"))
	f.expectMerge(75)
	var report core.CoverageReport
	f.expectReport(core.ReportResult{Posted: true}, &report)
	f.output.On("SetOutput", "total-coverage", "75.00").Return(nil).Once()
	f.output.On("SetOutput", "comment-posted", "true").Return(nil).Once()

	err := f.pipeline.Start(context.TODO())

	var failed *errs.StatusFailed
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "The code coverage is too low: 75. Expected at least 80.", failed.Remark)
	assert.Equal(t, "The code coverage is too low: 75. Expected at least 80.", report.ErrorMessage)
	assert.Equal(t, "Summary coverage rate:", report.Summary)
	assert.Equal(t, "\n  src/a.c", report.Detail)
	assert.Equal(t, float64(75), report.TotalCoverage)
	assert.Equal(t, 1, f.loaded)
}

func TestPipeline_Start_threshold(t *testing.T) {
	tests := []struct {
		name    string
		minimum string
		total   float64
		wantErr bool
	}{
		{"equal passes", "80", 80, false},
		{"above passes", "80", 80.01, false},
		{"just below fails", "80", 79.99, true},
		{"zero minimum", "0", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, reporterConfig(tt.minimum, ""))
			f.expectMerge(tt.total)
			f.output.On("SetOutput", "total-coverage", mock.AnythingOfType("string")).Return(nil).Once()
			f.output.On("SetOutput", "comment-posted", "false").Return(nil).Once()

			err := f.pipeline.Start(context.TODO())
			assert.Equal(t, tt.wantErr, err != nil, "error: %v", err)
		})
	}
}

func TestPipeline_Start_withoutToken(t *testing.T) {
	f := newFixture(t, reporterConfig("0", ""))
	f.expectMerge(60)
	f.output.On("SetOutput", "total-coverage", "60.00").Return(nil).Once()
	f.output.On("SetOutput", "comment-posted", "false").Return(nil).Once()

	require.NoError(t, f.pipeline.Start(context.TODO()))

	assert.Equal(t, 0, f.loaded)
	f.reporter.AssertNotCalled(t, "Report", mock.Anything, mock.Anything, mock.Anything)
	f.coverage.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything, mock.Anything)
	skipped := f.logs.FilterMessageSnippet("github token").Len() + f.logs.FilterMessageSnippet("github-token").Len()
	assert.Equal(t, 2, skipped)
}

func TestPipeline_Start_postingFailureIsNotEscalated(t *testing.T) {
	f := newFixture(t, reporterConfig("50", "ghs_token"))
	f.expectMerge(75)
	var report core.CoverageReport
	f.expectReport(core.ReportResult{Err: errors.New("403")}, &report)
	f.output.On("SetOutput", "total-coverage", "75.00").Return(nil).Once()
	f.output.On("SetOutput", "comment-posted", "false").Return(nil).Once()

	require.NoError(t, f.pipeline.Start(context.TODO()))
	assert.Empty(t, report.ErrorMessage)
}

func TestPipeline_Start_parallel(t *testing.T) {
	cfg := reporterConfig("0", "")
	cfg.Parallel = true
	f := newFixture(t, cfg)
	f.expectMerge(100)
	f.output.On("SetOutput", "total-coverage", "100.00").Return(nil).Once()
	f.output.On("SetOutput", "comment-posted", "false").Return(nil).Once()

	require.NoError(t, f.pipeline.Start(context.TODO()))
}

func TestPipeline_Start_outputErrorsAreLogged(t *testing.T) {
	f := newFixture(t, reporterConfig("0", ""))
	f.expectMerge(10)
	f.output.On("SetOutput", mock.Anything, mock.Anything).Return(errors.New("read-only file system")).Twice()

	require.NoError(t, f.pipeline.Start(context.TODO()))
	assert.Equal(t, 2, f.logs.FilterMessageSnippet("failed to set output").Len())
}

func TestPipeline_Start_errors(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	boom := errors.New("boom")

	t.Run("invalid threshold", func(t *testing.T) {
		pipeline, _ := core.NewPipeline(reporterConfig("abc", ""), logger)
		assert.Error(t, pipeline.Start(context.TODO()))
	})

	t.Run("install failure", func(t *testing.T) {
		pipeline, _ := core.NewPipeline(reporterConfig("0", ""), logger)
		installer := mocks.NewInstaller(t)
		installer.On("Install", mock.Anything).Return(boom).Once()
		pipeline.Installer = installer
		assert.ErrorIs(t, pipeline.Start(context.TODO()), boom)
	})

	t.Run("merge failure aborts", func(t *testing.T) {
		f := newFixture(t, reporterConfig("0", "ghs_token"))
		f.tool.On("Merge", mock.Anything, traces, mock.AnythingOfType("string")).Return("", boom).Once()
		assert.ErrorIs(t, f.pipeline.Start(context.TODO()), boom)
	})

	t.Run("changed files failure aborts before posting", func(t *testing.T) {
		f := newFixture(t, reporterConfig("0", "ghs_token"))
		f.expectMerge(90)
		f.output.On("SetOutput", "total-coverage", "90.00").Return(nil).Once()
		f.coverage.On("Summary", mock.Anything, "/tmp/lcov.info").Return("summary", nil).Once()
		f.coverage.On("Detail", mock.Anything, "/tmp/lcov.info", f.runCtx).Return("", boom).Once()

		assert.ErrorIs(t, f.pipeline.Start(context.TODO()), boom)
		f.reporter.AssertNotCalled(t, "Report", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("run context failure", func(t *testing.T) {
		f := newFixture(t, reporterConfig("0", "ghs_token"))
		f.expectMerge(90)
		f.output.On("SetOutput", "total-coverage", "90.00").Return(nil).Once()
		f.pipeline.LoadRunContext = func() (*core.RunContext, error) { return nil, errs.ErrMissingEventPayload }

		assert.ErrorIs(t, f.pipeline.Start(context.TODO()), errs.ErrMissingEventPayload)
	})
}
