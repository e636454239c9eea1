package testutils

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// getCurrentWorkingDir give the file path of the repository root
func getCurrentWorkingDir() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errs.New("runtime.Calller(1) was unable to recover information")
	}
	filepath := path.Join(path.Dir(filename), "../")
	return filepath, nil
}

// GetLogger returns a dummy lumber.Logger.
func GetLogger() (lumber.Logger, error) {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{ConsoleLevel: lumber.Debug}, true, lumber.InstanceZapLogger)
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// GetObservedLogger returns a logger whose entries are recorded in memory for assertions.
func GetObservedLogger() (lumber.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return lumber.NewZapLoggerWithCore(core), logs
}

// Path returns the absolute path of a file relative to the repository root.
func Path(relativePath string) string {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		panic(err)
	}
	return path.Join(cwd, relativePath)
}

// LoadFile reads a file relative to the repository root.
func LoadFile(relativePath string) ([]byte, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return nil, err
	}
	absPath := fmt.Sprintf("%s/%s", cwd, relativePath)
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	return data, err
}

// MustLoadFile is LoadFile for fixtures that are known to exist.
func MustLoadFile(relativePath string) []byte {
	data, err := LoadFile(relativePath)
	if err != nil {
		panic(err)
	}
	return data
}
