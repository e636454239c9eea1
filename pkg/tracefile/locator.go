// Package tracefile locates lcov tracefiles and reads their totals.
package tracefile

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"github.com/bmatcuk/doublestar/v4"
)

type locator struct {
	workDir string
	logger  lumber.Logger
}

// NewLocator returns a TraceLocator resolving patterns against workDir.
func NewLocator(workDir string, logger lumber.Logger) core.TraceLocator {
	return &locator{workDir: workDir, logger: logger}
}

// Locate expands pattern into the matching tracefiles. Relative patterns match
// below the working directory and yield paths relative to it, so they can be
// passed as-is to tools running there. Directories are never returned.
func (l *locator) Locate(pattern string) ([]string, error) {
	var (
		matches []string
		fsys    fs.FS
		err     error
	)
	if filepath.IsAbs(pattern) {
		matches, err = doublestar.FilepathGlob(pattern)
	} else {
		fsys = os.DirFS(l.workDir)
		matches, err = doublestar.Glob(fsys, path.Clean(filepath.ToSlash(pattern)))
	}
	if err != nil {
		l.logger.Errorf("failed to expand coverage pattern %s, error: %v", pattern, err)
		return nil, err
	}

	traces := make([]string, 0, len(matches))
	for _, match := range matches {
		var info fs.FileInfo
		if fsys != nil {
			info, err = fs.Stat(fsys, match)
		} else {
			info, err = os.Stat(match)
		}
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		traces = append(traces, filepath.FromSlash(match))
	}
	if len(traces) == 0 {
		l.logger.Warnf("no coverage files match pattern %s in %s", pattern, l.workDir)
	}
	l.logger.Debugf("coverage files: %v", traces)
	return traces, nil
}
