package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs one coverage report from the trace files to the posted comment.
type Pipeline struct {
	Cfg             *config.ReporterConfig
	Logger          lumber.Logger
	Installer       Installer
	TraceLocator    TraceLocator
	LcovTool        LcovTool
	ReportService   ReportService
	CoverageService CoverageService
	Reporter        Reporter
	Output          ActionOutput
	// LoadRunContext is called only when a report is going to be posted.
	LoadRunContext func() (*RunContext, error)
}

// NewPipeline creates and returns a new Pipeline instance
func NewPipeline(cfg *config.ReporterConfig, logger lumber.Logger) (*Pipeline, error) {
	return &Pipeline{
		Cfg:    cfg,
		Logger: logger,
	}, nil
}

// Start runs the pipeline. It returns an *errs.StatusFailed when the total
// coverage is below the configured minimum and any other error when a step fails.
func (pl *Pipeline) Start(ctx context.Context) (err error) {
	startTime := time.Now()
	pl.Logger.Debugf("Starting pipeline.....")

	defer func() {
		if p := recover(); p != nil {
			pl.Logger.Errorf("panic stack trace: %v\n%s", p, string(debug.Stack()))
			err = errs.New(fmt.Sprintf("unexpected error: %v", p))
		}
		switch {
		case err == nil:
			pl.Logger.Infof("Coverage report finished in %s", time.Since(startTime).Round(time.Millisecond))
		case errors.Is(err, context.Canceled):
			pl.Logger.Warnf("Coverage report aborted")
		}
	}()

	minimum, err := pl.Cfg.Threshold()
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", global.TempDirPattern)
	if err != nil {
		pl.Logger.Errorf("failed to create temporary directory, error: %v", err)
		return errs.ErrDirCrt(err.Error())
	}
	if !pl.Cfg.KeepTemp {
		defer os.RemoveAll(tmpDir)
	}

	if err = pl.Installer.Install(ctx); err != nil {
		return err
	}

	pl.Logger.Debugf("Locating coverage files matching %s", pl.Cfg.CoverageFiles)
	traces, err := pl.TraceLocator.Locate(pl.Cfg.CoverageFiles)
	if err != nil {
		return err
	}
	pl.Logger.Infof("Found %d coverage files", len(traces))

	aggregate, err := pl.renderAndMerge(ctx, traces, tmpDir)
	if err != nil {
		return err
	}

	total, err := pl.CoverageService.TotalCoverage(aggregate)
	if err != nil {
		return err
	}
	pl.Logger.Infof("Total coverage: %s%%, minimum: %s%%", formatPercent(total), formatPercent(minimum))
	pl.setOutput(global.OutputTotalCoverage, strconv.FormatFloat(total, 'f', 2, 64))

	var errorMessage string
	failed := total < minimum
	if failed {
		errorMessage = fmt.Sprintf("The code coverage is too low: %s. Expected at least %s.",
			formatPercent(total), formatPercent(minimum))
	}

	posted := false
	if pl.Cfg.GithubToken == "" {
		pl.Logger.Infof("No github token given, skipping the coverage report comment")
		pl.Logger.Infof("Set the github-token input to post the coverage summary on pull requests and commits")
	} else {
		result, reportErr := pl.report(ctx, aggregate, total, errorMessage)
		if reportErr != nil {
			return reportErr
		}
		posted = result.Posted
	}
	pl.setOutput(global.OutputCommentPosted, strconv.FormatBool(posted))

	if failed {
		return &errs.StatusFailed{Remark: errorMessage}
	}
	return nil
}

// renderAndMerge renders the HTML report and merges the traces into the
// aggregate trace, concurrently when configured. Both write below tmpDir to
// distinct paths.
func (pl *Pipeline) renderAndMerge(ctx context.Context, traces []string, tmpDir string) (string, error) {
	var aggregate string
	if !pl.Cfg.Parallel {
		if err := pl.ReportService.RenderAndUpload(ctx, traces, tmpDir, pl.Cfg.ArtifactName); err != nil {
			return "", err
		}
		return pl.LcovTool.Merge(ctx, traces, tmpDir)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pl.ReportService.RenderAndUpload(gctx, traces, tmpDir, pl.Cfg.ArtifactName)
	})
	g.Go(func() (err error) {
		aggregate, err = pl.LcovTool.Merge(gctx, traces, tmpDir)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	return aggregate, nil
}

// report builds and posts the comment. Only the steps producing the report
// can fail the run, posting errors are carried in the result.
func (pl *Pipeline) report(ctx context.Context, aggregate string, total float64, errorMessage string) (ReportResult, error) {
	runCtx, err := pl.LoadRunContext()
	if err != nil {
		pl.Logger.Errorf("failed to read the run context, error: %v", err)
		return ReportResult{}, err
	}
	summary, err := pl.CoverageService.Summary(ctx, aggregate)
	if err != nil {
		return ReportResult{}, err
	}
	detail, err := pl.CoverageService.Detail(ctx, aggregate, runCtx)
	if err != nil {
		return ReportResult{}, err
	}
	return pl.Reporter.Report(ctx, runCtx, &CoverageReport{
		Title:         pl.Cfg.Title,
		Summary:       summary,
		Detail:        detail,
		TotalCoverage: total,
		ErrorMessage:  errorMessage,
	}), nil
}

func (pl *Pipeline) setOutput(name, value string) {
	if err := pl.Output.SetOutput(name, value); err != nil {
		pl.Logger.Warnf("failed to set output %s, error: %v", name, err)
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
