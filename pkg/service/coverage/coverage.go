package coverage

import (
	"context"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lcov"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/LambdaTest/lcov-reporter/pkg/tracefile"
)

const detailIndent = "\n  "

type codeCoverageService struct {
	logger      lumber.Logger
	lcovTool    core.LcovTool
	gitProvider core.GitProvider
	parser      lcov.OutputParser
}

// New returns a new instance of CoverageService. gitProvider may be nil when
// reporting is disabled, in which case Detail never filters.
func New(lcovTool core.LcovTool, gitProvider core.GitProvider, logger lumber.Logger) core.CoverageService {
	return &codeCoverageService{
		logger:      logger,
		lcovTool:    lcovTool,
		gitProvider: gitProvider,
	}
}

// TotalCoverage reads the line coverage straight from the aggregate trace.
func (c *codeCoverageService) TotalCoverage(aggregate string) (float64, error) {
	totals, err := tracefile.ParseFile(aggregate)
	if err != nil {
		c.logger.Errorf("failed to parse aggregate trace %s, error: %v", aggregate, err)
		return 0, err
	}
	c.logger.Debugf("aggregate trace covers %d of %d lines in %d files",
		totals.LinesHit, totals.LinesFound, totals.Files)
	return totals.LinePercent(), nil
}

// Summary returns the lcov summary without its banner line.
func (c *codeCoverageService) Summary(ctx context.Context, aggregate string) (string, error) {
	output, err := c.lcovTool.Summary(ctx, aggregate)
	if err != nil {
		return "", err
	}
	lines, err := c.parser.SummaryLines(output)
	if err != nil {
		c.logger.Errorf("failed to parse lcov summary, error: %v", err)
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Detail returns the per-file table, every row indented by two spaces. For
// pull requests only the rows of changed files are kept after the three
// header rows, and " n/a" is returned when no row is left.
func (c *codeCoverageService) Detail(ctx context.Context, aggregate string, runCtx *core.RunContext) (string, error) {
	output, err := c.lcovTool.List(ctx, aggregate)
	if err != nil {
		return "", err
	}
	lines, err := c.parser.ListLines(output)
	if err != nil {
		c.logger.Errorf("failed to parse lcov list, error: %v", err)
		return "", err
	}

	if runCtx == nil || !runCtx.IsPullRequest() || c.gitProvider == nil {
		return detailIndent + strings.Join(lines, detailIndent), nil
	}

	changedFiles, err := c.gitProvider.ListChangedFiles(ctx, runCtx.Owner, runCtx.Repo, runCtx.PRNumber)
	if err != nil {
		c.logger.Errorf("failed to list changed files of pull request #%d, error: %v", runCtx.PRNumber, err)
		return "", err
	}
	c.logger.Debugf("pull request #%d changes %d files", runCtx.PRNumber, len(changedFiles))

	filtered := FilterRows(lines, changedFiles)
	if len(filtered) == global.DetailHeaderLines {
		return global.NotApplicableDetail, nil
	}
	return detailIndent + strings.Join(filtered, detailIndent), nil
}

// FilterRows keeps the table header and every later row starting with one of
// the changed file paths. Matching is a plain prefix test, so "src/a.c" also
// keeps a row for "src/a.cpp".
func FilterRows(lines, changedFiles []string) []string {
	filtered := make([]string, 0, len(lines))
	for i, line := range lines {
		if i < global.DetailHeaderLines {
			filtered = append(filtered, line)
			continue
		}
		for _, file := range changedFiles {
			if strings.HasPrefix(line, file) {
				filtered = append(filtered, line)
				break
			}
		}
	}
	return filtered
}
