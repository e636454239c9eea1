package lcov

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/errs"
)

const (
	bannerPrefix    = "Reading tracefile"
	separatorPrefix = "="
	totalMarker     = "Total:"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// OutputParser strips the decoration lcov prints around its tables. Output
// that does not have the expected shape is rejected instead of being trimmed
// blindly.
type OutputParser struct{}

// Lines trims output and splits it into lines.
func (OutputParser) Lines(output []byte) []string {
	return lineBreak.Split(strings.TrimSpace(string(output)), -1)
}

// SummaryLines returns the `lcov --summary` output without its banner.
func (p OutputParser) SummaryLines(output []byte) ([]string, error) {
	return stripBanner(p.Lines(output))
}

// ListLines returns the `lcov --list` table without its banner and totals footer.
func (p OutputParser) ListLines(output []byte) ([]string, error) {
	lines, err := stripBanner(p.Lines(output))
	if err != nil {
		return nil, err
	}
	n := len(lines)
	if n < 2 {
		return nil, fmt.Errorf("list output has %d lines after the banner: %w", n, errs.ErrUnexpectedToolOutput)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[n-2]), separatorPrefix) || !strings.Contains(lines[n-1], totalMarker) {
		return nil, fmt.Errorf("list output does not end with a totals footer: %w", errs.ErrUnexpectedToolOutput)
	}
	return lines[:n-2], nil
}

func stripBanner(lines []string) ([]string, error) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], bannerPrefix) {
		return nil, fmt.Errorf("output does not start with %q: %w", bannerPrefix, errs.ErrUnexpectedToolOutput)
	}
	return lines[1:], nil
}
