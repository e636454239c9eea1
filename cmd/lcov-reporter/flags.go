package main

import (
	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().StringP("coverage-files", "f", "", "Glob pattern of the lcov tracefiles, ** matches any directory depth")
	rootCmd.PersistentFlags().StringP("minimum-coverage", "m", "", "Minimum total line coverage in percent, the run fails below it")
	rootCmd.PersistentFlags().String("github-token", "", "Token used to post the report comment, reporting is skipped when empty")
	rootCmd.PersistentFlags().StringP("working-directory", "w", "", "Directory the lcov tools run in")
	rootCmd.PersistentFlags().String("artifact-name", "", "Name of the uploaded HTML report, the upload is skipped when empty")
	rootCmd.PersistentFlags().String("title", "", "Heading of the report comment")
	rootCmd.PersistentFlags().Bool("update-comment", false, "Edit the previous report comment on the pull request instead of adding one")
	rootCmd.PersistentFlags().String("artifact-store", config.LocalStore, "Where artifacts are stored: local or azure")
	rootCmd.PersistentFlags().String("artifact-dir", "", "Root directory of the local artifact store")
	rootCmd.PersistentFlags().String("artifact-format", "", "Artifact format: zip or dir for local, files or tzst for azure, defaults to the first one")
	rootCmd.PersistentFlags().Int("api-retries", 0, "Extra attempts for failed GitHub API calls")
	rootCmd.PersistentFlags().Bool("parallel", false, "Render the HTML report and merge the tracefiles concurrently")
	rootCmd.PersistentFlags().Bool("skip-install", false, "Never install lcov, even when it is missing")
	rootCmd.PersistentFlags().Bool("keep-temp", true, "Leave the temporary directory on disk after the run")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Run in verbose mode")
	rootCmd.PersistentFlags().String("log-file", "", "Directory to write the log file to")
	rootCmd.PersistentFlags().String("log-backend", "zap", "Logging backend: zap or logrus")

	return nil
}
