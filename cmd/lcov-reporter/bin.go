package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/actions"
	"github.com/LambdaTest/lcov-reporter/pkg/artifact"
	"github.com/LambdaTest/lcov-reporter/pkg/azure"
	"github.com/LambdaTest/lcov-reporter/pkg/command"
	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/gitprovider/github"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/installer"
	"github.com/LambdaTest/lcov-reporter/pkg/lcov"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/LambdaTest/lcov-reporter/pkg/reporter"
	"github.com/LambdaTest/lcov-reporter/pkg/runcontext"
	"github.com/LambdaTest/lcov-reporter/pkg/service/coverage"
	"github.com/LambdaTest/lcov-reporter/pkg/service/htmlreport"
	"github.com/LambdaTest/lcov-reporter/pkg/tracefile"
	"github.com/LambdaTest/lcov-reporter/pkg/zstd"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:           "lcov-reporter",
		Long:          `lcov-reporter merges lcov tracefiles, publishes the HTML report and comments the coverage summary on GitHub`,
		Version:       global.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fail(nil, fmt.Errorf("loading .env: %w", err))
	}

	cfg, err := config.LoadReporterConfig(cmd)
	if err != nil {
		return fail(nil, err)
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, global.DefaultLogFileName)
	}

	backend, err := lumber.ParseInstance(cfg.LogBackend)
	if err != nil {
		return fail(nil, err)
	}
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, backend)
	if err != nil {
		return fail(nil, fmt.Errorf("could not instantiate logger: %w", err))
	}
	output := actions.FromEnv(logger)

	pl, err := newPipeline(cfg, logger, output)
	if err != nil {
		logger.Errorf("Unable to create the pipeline: %+v", err)
		return fail(output, err)
	}

	if err := pl.Start(ctx); err != nil {
		var failed *errs.StatusFailed
		if !errors.As(err, &failed) {
			logger.Errorf("Coverage report failed: %v", err)
		}
		return fail(output, err)
	}
	return nil
}

// newPipeline wires the services of a run.
func newPipeline(cfg *config.ReporterConfig, logger lumber.Logger, output core.ActionOutput) (*core.Pipeline, error) {
	pl, err := core.NewPipeline(cfg, logger)
	if err != nil {
		return nil, err
	}

	execManager := command.NewExecutionManager(logger, map[string]string{
		"github-token":      cfg.GithubToken,
		"azure-storage-key": cfg.Azure.StorageAccessKey,
	})
	lcovTool := lcov.NewTool(execManager, cfg.WorkingDirectory, logger)

	var azureClient core.AzureClient
	var compressor core.ZstdCompressor
	if cfg.ArtifactStore == config.AzureStore {
		if azureClient, err = azure.NewAzureBlobEnv(cfg.Azure, logger); err != nil {
			return nil, err
		}
		if compressor, err = zstd.New(execManager, logger); err != nil {
			return nil, err
		}
	}
	store, err := artifact.New(cfg, azureClient, compressor, logger)
	if err != nil {
		return nil, err
	}

	var gitProvider core.GitProvider
	var runCtx *core.RunContext
	if cfg.GithubToken != "" {
		runCtx, err = runcontext.FromEnv()
		if err == nil {
			gitProvider, err = github.New(cfg.GithubToken, runCtx.APIURL, cfg.APIRetries, logger)
		}
	}
	runCtxErr := err

	pl.Installer = installer.New(execManager, cfg.SkipInstall, logger)
	pl.TraceLocator = tracefile.NewLocator(cfg.WorkingDirectory, logger)
	pl.LcovTool = lcovTool
	pl.ReportService = htmlreport.New(lcovTool, store, logger)
	pl.CoverageService = coverage.New(lcovTool, gitProvider, logger)
	pl.Reporter = reporter.New(gitProvider, cfg.UpdateComment, logger)
	pl.Output = output
	pl.LoadRunContext = func() (*core.RunContext, error) {
		return runCtx, runCtxErr
	}
	return pl, nil
}

// fail reports err as the failed-run signal. output is nil before the logger exists.
func fail(output core.ActionOutput, err error) error {
	if output != nil {
		output.SetFailed(err.Error())
	} else {
		fmt.Fprintf(os.Stdout, "::error::%s\n", err.Error())
	}
	return err
}
