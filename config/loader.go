package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// inputKeys are the step inputs, read from INPUT_<KEY> the way the actions runner exports them.
var inputKeys = []string{
	"coverage-files",
	"minimum-coverage",
	"github-token",
	"working-directory",
	"artifact-name",
	"title",
	"update-comment",
	"artifact-store",
	"artifact-dir",
	"artifact-format",
	"api-retries",
	"parallel",
	"skip-install",
	"keep-temp",
}

// azureEnv maps the azure keys to the conventional azure environment variables.
var azureEnv = map[string]string{
	"azure.container-name":     "AZURE_STORAGE_CONTAINER",
	"azure.storage-account":    "AZURE_STORAGE_ACCOUNT",
	"azure.storage-access-key": "AZURE_STORAGE_KEY",
}

// LoadReporterConfig loads config from command instance to predefined config variables
func LoadReporterConfig(cmd *cobra.Command) (*ReporterConfig, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := bindInputEnv(); err != nil {
		return nil, err
	}

	// set default configs
	setReporterDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		viper.SetConfigName(global.DefaultConfigFileName)
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg, err := populateReporterConfig(new(ReporterConfig))
	if err != nil {
		return nil, err
	}
	normalize(cfg)
	if err := ValidateCfg(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindInputEnv binds every input to INPUT_<NAME> with the hyphens kept, as the
// actions runner sets them, and to the underscore form used by shells.
func bindInputEnv() error {
	for _, key := range inputKeys {
		upper := strings.ToUpper(key)
		if err := viper.BindEnv(key,
			fmt.Sprintf("%s_%s", global.EnvInputPrefix, upper),
			fmt.Sprintf("%s_%s", global.EnvInputPrefix, strings.ReplaceAll(upper, "-", "_"))); err != nil {
			return err
		}
	}
	for key, env := range azureEnv {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func normalize(cfg *ReporterConfig) {
	cfg.CoverageFiles = strings.TrimSpace(cfg.CoverageFiles)
	cfg.MinimumCoverage = strings.TrimSpace(cfg.MinimumCoverage)
	cfg.GithubToken = strings.TrimSpace(cfg.GithubToken)
	cfg.ArtifactName = strings.TrimSpace(cfg.ArtifactName)
	cfg.WorkingDirectory = strings.TrimSpace(cfg.WorkingDirectory)
	if cfg.WorkingDirectory == "" {
		cfg.WorkingDirectory = global.DefaultWorkingDirectory
	}
	if cfg.MinimumCoverage == "" {
		cfg.MinimumCoverage = "0"
	}
	if cfg.ArtifactFormat == "" {
		if formats := storeFormats[cfg.ArtifactStore]; len(formats) > 0 {
			cfg.ArtifactFormat = formats[0]
		}
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = filepath.Join(os.TempDir(), global.ArtifactDirName)
	}
}
