package zstd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

type zstdCompressor struct {
	logger      lumber.Logger
	execManager core.ExecutionManager
	execPath    string
}

const (
	manifestFilePattern = "lcov-reporter-manifest-*.txt"
	executableName      = "tar"
)

// New return zStandard compression manager
func New(execManager core.ExecutionManager, logger lumber.Logger) (core.ZstdCompressor, error) {
	path, err := exec.LookPath(executableName)
	if err != nil {
		logger.Errorf("failed to find path for tar, error:%v", err)
		return nil, err
	}

	return &zstdCompressor{logger: logger, execManager: execManager, execPath: path}, nil
}

// createManifestFile writes the list of files handed to tar with -T.
func (z *zstdCompressor) createManifestFile(fileNames ...string) (string, error) {
	f, err := os.CreateTemp("", manifestFilePattern)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(fileNames, "\n")); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// Compress archives filesToCompress, given relative to workingDirectory, into compressedFileName.
func (z *zstdCompressor) Compress(ctx context.Context, compressedFileName, workingDirectory string, filesToCompress ...string) error {
	manifest, err := z.createManifestFile(filesToCompress...)
	if err != nil {
		z.logger.Errorf("failed to create manifest file %v", err)
		return err
	}
	defer os.Remove(manifest)

	command := fmt.Sprintf("%s --posix -I 'zstd -5 -T0' -cf %s -C %s -T %s", z.execPath, compressedFileName, workingDirectory, manifest)
	if err := z.execManager.ExecuteInternalCommands(ctx, core.Zstd, []string{command}, workingDirectory, nil, nil); err != nil {
		z.logger.Errorf("error while zstd compression %v", err)
		return err
	}
	return nil
}
