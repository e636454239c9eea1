package config

import "github.com/LambdaTest/lcov-reporter/pkg/lumber"

// Model definition for configuration

// ReporterConfig is the application's configuration
type ReporterConfig struct {
	Config           string `viper:"config"`
	CoverageFiles    string `viper:"coverage-files" validate:"required"`
	MinimumCoverage  string `viper:"minimum-coverage" validate:"omitempty,numeric"`
	GithubToken      string `viper:"github-token"`
	WorkingDirectory string `viper:"working-directory" validate:"required"`
	ArtifactName     string `viper:"artifact-name"`
	Title            string `viper:"title"`
	UpdateComment    bool   `viper:"update-comment"`
	ArtifactStore    string `viper:"artifact-store" validate:"oneof=local azure"`
	ArtifactDir      string `viper:"artifact-dir"`
	ArtifactFormat   string `viper:"artifact-format" validate:"oneof=zip dir files tzst"`
	APIRetries       int    `viper:"api-retries" validate:"gte=0,lte=10"`
	Parallel         bool   `viper:"parallel"`
	SkipInstall      bool   `viper:"skip-install"`
	KeepTemp         bool   `viper:"keep-temp"`
	Verbose          bool   `viper:"verbose"`
	LogFile          string `viper:"log-file"`
	LogBackend       string `viper:"log-backend" validate:"omitempty,oneof=zap logrus"`
	LogConfig        lumber.LoggingConfig
	Azure            Azure `viper:"azure"`
}

// Azure provides the storage configuration.
type Azure struct {
	ContainerName      string `viper:"container-name"`
	StorageAccountName string `viper:"storage-account"`
	StorageAccessKey   string `viper:"storage-access-key"`
}

// Artifact store kinds
const (
	LocalStore = "local"
	AzureStore = "azure"
)

// Artifact formats
const (
	ZipFormat   = "zip"
	DirFormat   = "dir"
	FilesFormat = "files"
	TzstFormat  = "tzst"
)
