package artifact

import (
	"context"
	"os"
	"path/filepath"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/fileutils"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/mholt/archiver/v3"
)

// localStore keeps artifacts on the runner filesystem below dir.
type localStore struct {
	dir    string
	format string
	logger lumber.Logger
}

// Upload writes the files as <dir>/<name>.zip or copies them to <dir>/<name>.
// An artifact of the same name is replaced.
func (s *localStore) Upload(ctx context.Context, name, rootDir string, files []string) (string, error) {
	if err := fileutils.CreateIfNotExists(s.dir, true); err != nil {
		return "", errs.ErrDirCrt(err.Error())
	}

	var (
		location string
		err      error
	)
	if s.format == config.DirFormat {
		location = filepath.Join(s.dir, name)
		if err = os.RemoveAll(location); err == nil {
			err = fileutils.CopyFiles(rootDir, location, files)
		}
	} else {
		location = filepath.Join(s.dir, name+global.ZipArtifactExt)
		err = s.zip(ctx, location, rootDir, files)
	}
	if err != nil {
		s.logger.Errorf("failed to store artifact %s, error: %v", name, err)
		return "", err
	}

	size, err := fileutils.TotalSize(files...)
	if err != nil {
		return "", err
	}
	s.logger.Infof("stored artifact %s with %d files (%s) at %s", name, len(files), humanSize(size), location)
	return location, nil
}

func (s *localStore) zip(ctx context.Context, location, rootDir string, files []string) (err error) {
	out, err := os.Create(location)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	z := archiver.NewZip()
	if err = z.Create(out); err != nil {
		return err
	}
	defer func() {
		if cerr := z.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, file := range files {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = addToZip(z, rootDir, file); err != nil {
			return err
		}
	}
	return nil
}

func addToZip(z *archiver.Zip, rootDir, file string) error {
	rel, err := fileutils.RelativePath(rootDir, file)
	if err != nil {
		return err
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return z.Write(archiver.File{
		FileInfo: archiver.FileInfo{
			FileInfo:   info,
			CustomName: filepath.ToSlash(rel),
		},
		ReadCloser: f,
	})
}
