// Package htmlreport renders the genhtml report and publishes it as an artifact.
package htmlreport

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/bmatcuk/doublestar/v4"
)

type reportService struct {
	lcovTool core.LcovTool
	store    core.ArtifactStore
	logger   lumber.Logger
}

// New returns a ReportService rendering through lcovTool and uploading to store.
func New(lcovTool core.LcovTool, store core.ArtifactStore, logger lumber.Logger) core.ReportService {
	return &reportService{lcovTool: lcovTool, store: store, logger: logger}
}

// RenderAndUpload renders the report into <tmpDir>/html. When artifactName is
// blank the upload is skipped, otherwise any upload error fails the call.
func (r *reportService) RenderAndUpload(ctx context.Context, traces []string, tmpDir, artifactName string) error {
	outputDir := filepath.Join(tmpDir, global.HTMLReportDirName)
	if err := r.lcovTool.Render(ctx, traces, outputDir); err != nil {
		return err
	}

	name := strings.TrimSpace(artifactName)
	if name == "" {
		r.logger.Infof("No artifact name given, skipping upload of the HTML report in %s", outputDir)
		return nil
	}

	files, err := reportFiles(outputDir)
	if err != nil {
		r.logger.Errorf("failed to list html report files, error: %v", err)
		return err
	}
	location, err := r.store.Upload(ctx, name, outputDir, files)
	if err != nil {
		return err
	}
	r.logger.Infof("HTML report uploaded as artifact %s: %s", name, location)
	return nil
}

// reportFiles returns every regular file below dir, as paths joined with dir.
func reportFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*")
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, filepath.FromSlash(match)))
	}
	return files, nil
}
