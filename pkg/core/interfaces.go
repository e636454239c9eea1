package core

import (
	"context"
	"io"
)

// Installer makes sure the external coverage tools are available
type Installer interface {
	// Install installs lcov when it is missing from PATH.
	Install(ctx context.Context) error
}

// TraceLocator expands the coverage pattern into trace files
type TraceLocator interface {
	// Locate returns the trace files matching pattern, in glob order.
	Locate(pattern string) ([]string, error)
}

// LcovTool wraps the lcov and genhtml binaries
type LcovTool interface {
	// Merge combines every trace into one aggregate trace inside tmpDir and returns its path.
	Merge(ctx context.Context, traces []string, tmpDir string) (string, error)
	// Render writes the HTML report for traces into outputDir.
	Render(ctx context.Context, traces []string, outputDir string) error
	// Summary returns the raw output of `lcov --summary`.
	Summary(ctx context.Context, aggregate string) ([]byte, error)
	// List returns the raw output of `lcov --list`.
	List(ctx context.Context, aggregate string) ([]byte, error)
}

// ReportService renders the HTML report and publishes it as an artifact
type ReportService interface {
	// RenderAndUpload renders the HTML report under tmpDir and uploads it when artifactName is set.
	RenderAndUpload(ctx context.Context, traces []string, tmpDir, artifactName string) error
}

// CoverageService extracts the coverage figures posted in reports
type CoverageService interface {
	// TotalCoverage returns the line coverage percentage of the aggregate trace.
	TotalCoverage(aggregate string) (float64, error)
	// Summary returns the cleaned summary table.
	Summary(ctx context.Context, aggregate string) (string, error)
	// Detail returns the per-file table, filtered to changed files for pull requests.
	Detail(ctx context.Context, aggregate string, runCtx *RunContext) (string, error)
}

// GitProvider is the source forge API used for reporting
type GitProvider interface {
	// ListChangedFiles returns every file touched by the pull request.
	ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]string, error)
	// CreatePullRequestComment posts a comment on the pull request and returns its URL.
	CreatePullRequestComment(ctx context.Context, owner, repo string, number int, body string) (string, error)
	// CreateCommitComment posts a comment on the commit and returns its URL.
	CreateCommitComment(ctx context.Context, owner, repo, sha, body string) (string, error)
	// FindPullRequestComment returns the id of the first comment containing marker, 0 if none.
	FindPullRequestComment(ctx context.Context, owner, repo string, number int, marker string) (int64, error)
	// UpdatePullRequestComment replaces the body of an existing comment and returns its URL.
	UpdatePullRequestComment(ctx context.Context, owner, repo string, commentID int64, body string) (string, error)
}

// Reporter posts the coverage report
type Reporter interface {
	Report(ctx context.Context, runCtx *RunContext, report *CoverageReport) ReportResult
}

// ActionOutput publishes step outputs and failures to the CI runner
type ActionOutput interface {
	SetOutput(name, value string) error
	SetFailed(message string)
}

// ArtifactStore stores the rendered report as a named artifact
type ArtifactStore interface {
	// Upload stores files, all located under rootDir, as the artifact name and returns its location.
	Upload(ctx context.Context, name, rootDir string, files []string) (string, error)
}

// AzureClient defines operation for working with azure store
type AzureClient interface {
	Create(ctx context.Context, path string, reader io.Reader, mimeType string) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// ZstdCompressor performs zstd compression
type ZstdCompressor interface {
	// Compress archives files, given relative to workingDirectory, into compressedFileName.
	Compress(ctx context.Context, compressedFileName, workingDirectory string, filesToCompress ...string) error
}

// ExecutionManager has responsibility for executing the internal commands and external tools
type ExecutionManager interface {
	// ExecuteInternalCommands executes shell commands like installing lcov.
	ExecuteInternalCommands(ctx context.Context, commandType CommandType, commands []string, cwd string, envMap, secretData map[string]string) error
	// ExecuteTool runs binary with args and returns its combined stdout and stderr.
	ExecuteTool(ctx context.Context, commandType CommandType, binary string, args []string, cwd string) ([]byte, error)
	// GetEnvVariables get the environment variables with envMap appended.
	GetEnvVariables(envMap map[string]string) []string
}
