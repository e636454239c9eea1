// Package installer makes sure lcov and genhtml are on PATH before a run.
package installer

import (
	"context"
	"os/exec"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

type installer struct {
	execManager core.ExecutionManager
	skip        bool
	lookPath    func(file string) (string, error)
	logger      lumber.Logger
}

// New returns an Installer. With skip the binaries are only looked up and
// never installed.
func New(execManager core.ExecutionManager, skip bool, logger lumber.Logger) core.Installer {
	return &installer{execManager: execManager, skip: skip, lookPath: exec.LookPath, logger: logger}
}

// Install runs the package install commands once when a binary is missing. It is not retried.
func (i *installer) Install(ctx context.Context) error {
	missing := i.missingBinaries()
	if len(missing) == 0 {
		return nil
	}
	if i.skip {
		i.logger.Warnf("%v not found on PATH and installation is disabled", missing)
		return nil
	}
	i.logger.Infof("%v not found on PATH, installing lcov", missing)
	if err := i.execManager.ExecuteInternalCommands(ctx, core.InstallLcov, global.InstallLcovCmds, "", nil, nil); err != nil {
		i.logger.Errorf("failed to install lcov, error: %v", err)
		return err
	}
	return nil
}

func (i *installer) missingBinaries() []string {
	var missing []string
	for _, binary := range []string{global.LcovBinary, global.GenhtmlBinary} {
		path, err := i.lookPath(binary)
		if err != nil {
			missing = append(missing, binary)
			continue
		}
		i.logger.Debugf("found %s at %s", binary, path)
	}
	return missing
}
