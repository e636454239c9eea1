package artifact

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/fileutils"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentUploads = 4

// azureStore uploads artifacts to a blob container, either file by file
// below <name>/ or as a single <name>.tzst archive.
type azureStore struct {
	client core.AzureClient
	zstd   core.ZstdCompressor
	format string
	logger lumber.Logger
}

func (s *azureStore) Upload(ctx context.Context, name, rootDir string, files []string) (string, error) {
	if s.format == config.TzstFormat {
		return s.uploadArchive(ctx, name, rootDir, files)
	}
	return s.uploadFiles(ctx, name, rootDir, files)
}

func (s *azureStore) uploadFiles(ctx context.Context, name, rootDir string, files []string) (string, error) {
	blobPaths := make([]string, len(files))
	for i, file := range files {
		rel, err := fileutils.RelativePath(rootDir, file)
		if err != nil {
			return "", err
		}
		blobPaths[i] = path.Join(name, filepath.ToSlash(rel))
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for i := range files {
		i := i
		g.Go(func() error {
			f, err := os.Open(files[i])
			if err != nil {
				return err
			}
			defer f.Close()
			urls[i], err = s.client.Create(ctx, blobPaths[i], f, mimeType(files[i]))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorf("failed to upload artifact %s, error: %v", name, err)
		return "", err
	}

	size, err := fileutils.TotalSize(files...)
	if err != nil {
		return "", err
	}
	s.logger.Infof("uploaded artifact %s with %d files (%s)", name, len(files), humanSize(size))
	for i, blobPath := range blobPaths {
		if path.Base(blobPath) == "index.html" && path.Dir(blobPath) == name {
			return urls[i], nil
		}
	}
	return name, nil
}

func (s *azureStore) uploadArchive(ctx context.Context, name, rootDir string, files []string) (string, error) {
	rels := make([]string, len(files))
	for i, file := range files {
		rel, err := fileutils.RelativePath(rootDir, file)
		if err != nil {
			return "", err
		}
		rels[i] = rel
	}
	archive := filepath.Join(filepath.Dir(rootDir), name+global.CompressedArtifactExt)
	if err := s.zstd.Compress(ctx, archive, rootDir, rels...); err != nil {
		return "", err
	}

	blobPath := name + global.CompressedArtifactExt
	if exists, err := s.client.Exists(ctx, blobPath); err != nil {
		s.logger.Warnf("failed to check for existing artifact %s, error: %v", blobPath, err)
	} else if exists {
		s.logger.Infof("replacing existing artifact %s", blobPath)
	}

	f, err := os.Open(archive)
	if err != nil {
		return "", err
	}
	defer f.Close()
	url, err := s.client.Create(ctx, blobPath, f, global.DefaultAzureMimeType)
	if err != nil {
		s.logger.Errorf("failed to upload artifact %s, error: %v", name, err)
		return "", err
	}
	if size, err := fileutils.TotalSize(archive); err == nil {
		s.logger.Infof("uploaded artifact %s (%s)", name, humanSize(size))
	}
	return url, nil
}
