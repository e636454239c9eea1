// Package lcov drives the lcov and genhtml binaries.
package lcov

import "github.com/LambdaTest/lcov-reporter/pkg/global"

// MergeArgs returns the lcov arguments combining traces into output.
func MergeArgs(traces []string, output string) []string {
	args := make([]string, 0, 2*len(traces)+4)
	for _, trace := range traces {
		args = append(args, "--add-tracefile", trace)
	}
	return append(args, "--output-file", output, "--rc", global.BranchCoverageRC)
}

// RenderArgs returns the genhtml arguments writing the report for traces into outputDir.
func RenderArgs(traces []string, outputDir string) []string {
	args := make([]string, 0, len(traces)+7)
	args = append(args, traces...)
	return append(args,
		"--rc", global.BranchCoverageRC,
		"--no-source",
		"--synthesize-missing",
		"--output-directory", outputDir)
}

// SummaryArgs returns the lcov arguments printing the summary of aggregate.
func SummaryArgs(aggregate string) []string {
	return []string{"--summary", aggregate, "--rc", global.BranchCoverageRC}
}

// ListArgs returns the lcov arguments printing the per-file table of aggregate.
func ListArgs(aggregate string) []string {
	return []string{"--list", aggregate, "--list-full-path", "--rc", global.BranchCoverageRC}
}
