package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/global"
)

// CopyFile copies the contents of the file named src to the file named
// by dst. The file will be created if it does not already exist. If the
// destination file exists, all it's contents will be replaced by the contents
// of the source file. The copied data is synced/flushed to stable storage and
// with changeMode the file mode is copied from the source.
func CopyFile(src, dst string, changeMode bool) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return
	}
	if err = out.Sync(); err != nil {
		return
	}
	if !changeMode {
		return
	}

	si, err := os.Lstat(src)
	if err != nil {
		return
	}
	return os.Chmod(dst, si.Mode())
}

// CopyFiles copies files, all located under rootDir, into dst keeping their
// path relative to rootDir. dst must not exist.
func CopyFiles(rootDir, dst string, files []string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination %+v already exists", dst)
	} else if !os.IsNotExist(err) {
		return err
	}
	for _, file := range files {
		rel, err := RelativePath(rootDir, file)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if err := os.MkdirAll(filepath.Dir(target), global.DirectoryPermissions); err != nil {
			return err
		}
		if err := CopyFile(file, target, true); err != nil {
			return err
		}
	}
	return nil
}

// RelativePath returns file relative to rootDir, failing for files outside of it.
func RelativePath(rootDir, file string) (string, error) {
	rel, err := filepath.Rel(rootDir, file)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not under %s", file, rootDir)
	}
	return rel, nil
}

// TotalSize returns the summed size of files in bytes.
func TotalSize(files ...string) (int64, error) {
	var total int64
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}

// CheckIfExists checks if file or directory exists in the given path.
func CheckIfExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateIfNotExists creates a file or a directory only if it does not already exist.
func CreateIfNotExists(path string, isDir bool) error {
	exists, err := CheckIfExists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if isDir {
		return os.MkdirAll(path, global.DirectoryPermissions)
	}
	if err := os.MkdirAll(filepath.Dir(path), global.DirectoryPermissions); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE, global.FilePermissions)
	if err != nil {
		return err
	}
	return f.Close()
}
