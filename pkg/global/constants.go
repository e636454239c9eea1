package global

import (
	"os"
	"time"
)

// Version of the lcov-reporter binary, overridden at build time with -ldflags.
var Version = "dev"

// All constants related to the reporter
const (
	LcovBinary              = "lcov"
	GenhtmlBinary           = "genhtml"
	BranchCoverageRC        = "lcov_branch_coverage=1"
	AggregateTraceFileName  = "lcov.info"
	HTMLReportDirName       = "html"
	ArtifactDirName         = "artifacts"
	TempDirPattern          = "lcov-reporter-*"
	ShortSHALength          = 7
	DefaultAPITimeout       = 45 * time.Second
	DirectoryPermissions    = os.FileMode(0755)
	FilePermissions         = os.FileMode(0644)
	DefaultServerURL        = "https://github.com"
	DefaultAPIURL           = "https://api.github.com"
	ReportHeading           = "[LCOV](https://github.com/marketplace/actions/report-lcov)"
	CommentMarkerFormat     = "<!-- lcov-reporter:%s -->"
	ChangedFilesPerPage     = 100
	NotApplicableDetail     = " n/a"
	DetailHeaderLines       = 3
	CompressedArtifactExt   = ".tzst"
	ZipArtifactExt          = ".zip"
	OutputTotalCoverage     = "total-coverage"
	OutputCommentPosted     = "comment-posted"
	EnvInputPrefix          = "INPUT"
	DefaultConfigFileName   = ".lcov-reporter"
	DefaultLogFileName      = "lcov-reporter.log"
	DefaultAzureMimeType    = "application/octet-stream"
	MaxChangedFilePages     = 1000
	DefaultWorkingDirectory = "."
)

// InstallLcovCmds are the commands used to install lcov and genhtml on the runner
var InstallLcovCmds = []string{"sudo apt-get update", "sudo apt-get install -y lcov"}
