package command

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ExecuteTool(t *testing.T) {
	logger, logs := testutils.GetObservedLogger()
	m := NewExecutionManager(logger, map[string]string{"github-token": "ghs_supersecret"})

	out, err := m.ExecuteTool(context.TODO(), core.Summary, "/bin/sh",
		[]string{"-c", "echo Reading tracefile x.info; echo token ghs_supersecret 1>&2"}, "")
	require.NoError(t, err)

	assert.Contains(t, string(out), "Reading tracefile x.info")
	assert.Contains(t, string(out), "token ghs_supersecret")

	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "ghs_supersecret")
	}
}

func TestManager_ExecuteTool_cwdAndFailure(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	m := NewExecutionManager(logger, nil)
	dir := t.TempDir()

	out, err := m.ExecuteTool(context.TODO(), core.List, "/bin/sh", []string{"-c", "pwd"}, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, strings.TrimSpace(string(out)))

	out, err = m.ExecuteTool(context.TODO(), core.CoverageMerge, "/bin/sh", []string{"-c", "echo partial; exit 3"}, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ERR::TOOL::EXEC")
	assert.Equal(t, "partial\n", string(out))
}

func TestManager_ExecuteInternalCommands(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	m := NewExecutionManager(logger, nil)
	dir := t.TempDir()

	tests := []struct {
		name     string
		commands []string
		envMap   map[string]string
		wantErr  bool
	}{
		{"success", []string{"true", "echo ok"}, nil, false},
		{"stops at first failure", []string{"false", "touch never"}, nil, true},
		{"env map", []string{`test "$LCOV_REPORTER" = "yes"`}, map[string]string{"LCOV_REPORTER": "yes"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.ExecuteInternalCommands(context.TODO(), core.InstallLcov, tt.commands, dir, tt.envMap, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("manager.ExecuteInternalCommands() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	_, err := os.Stat(dir + "/never")
	assert.True(t, os.IsNotExist(err))
}

func TestManager_GetEnvVariables(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	m := NewExecutionManager(logger, nil)
	base := len(os.Environ())

	got := m.GetEnvVariables(map[string]string{"os": "linux", "arch": "amd64"})
	require.Len(t, got, base+2)
	assert.Equal(t, []string{"arch=amd64", "os=linux"}, got[base:])
}
