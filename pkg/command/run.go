package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/logstream"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

type manager struct {
	logger     lumber.Logger
	secretData map[string]string
}

// NewExecutionManager returns new instance of manager. Values of secretData
// are masked in every line the manager logs.
func NewExecutionManager(logger lumber.Logger, secretData map[string]string) core.ExecutionManager {
	return &manager{logger: logger, secretData: secretData}
}

// ExecuteInternalCommands executes internal commands
func (m *manager) ExecuteInternalCommands(ctx context.Context,
	commandType core.CommandType,
	commands []string,
	cwd string,
	envMap, secretData map[string]string) error {
	bashCommands := strings.Join(commands, " && ")
	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", bashCommands)
	if cwd != "" {
		cmd.Dir = cwd
	}
	if len(envMap) > 0 {
		cmd.Env = m.GetEnvVariables(envMap)
	}
	logWriter := lumber.NewWriter(m.logger)
	defer logWriter.Close()
	maskWriter := logstream.NewMasker(logWriter, mergeSecrets(m.secretData, secretData))
	cmd.Stderr = maskWriter
	cmd.Stdout = maskWriter
	m.logger.Debugf("Executing command of type %s", commandType)
	if err := cmd.Run(); err != nil {
		m.logger.Errorf("command of type %s failed with error: %v", commandType, err)
		return err
	}
	return nil
}

// ExecuteTool runs binary directly, without a shell, so trace paths never need quoting.
// Stdout and stderr share one buffer and keep the order the process emitted them in.
func (m *manager) ExecuteTool(ctx context.Context,
	commandType core.CommandType,
	binary string,
	args []string,
	cwd string) ([]byte, error) {
	var output bytes.Buffer
	logWriter := lumber.NewWriter(m.logger)
	defer logWriter.Close()
	writer := io.MultiWriter(&output, logstream.NewMasker(logWriter, m.secretData))

	cmd := exec.CommandContext(ctx, binary, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Stdout = writer
	cmd.Stderr = writer

	m.logger.Infof("[command]%s %s", binary, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		m.logger.Errorf("command of type %s failed with error: %v", commandType, err)
		return output.Bytes(), errs.ErrToolExec(binary, err)
	}
	return output.Bytes(), nil
}

// GetEnvVariables returns the process environment with envMap appended in key order
func (m *manager) GetEnvVariables(envMap map[string]string) []string {
	envVars := os.Environ()
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		envVars = append(envVars, fmt.Sprintf("%s=%s", k, envMap[k]))
	}
	return envVars
}

func mergeSecrets(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
