package zstd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/LambdaTest/lcov-reporter/testutils/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	_, err := New(mocks.NewExecutionManager(t), logger)
	if err != nil {
		t.Errorf("Couldn't initialise a new zstdCompressor, error: %v", err)
	}
}

func Test_zstdCompressor_createManifestFile(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	z := &zstdCompressor{logger: logger, execPath: "tar"}

	manifest, err := z.createManifestFile("index.html", "src/a.c.gcov.html")
	require.NoError(t, err)
	defer os.Remove(manifest)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, "index.html\nsrc/a.c.gcov.html", string(data))
}

func Test_zstdCompressor_Compress(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"Test Compress for success", nil, false},
		{"Test Compress for error", errs.New("error from mocked interface"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var receivedCommands []string
			var manifestContent string
			execManager := mocks.NewExecutionManager(t)
			execManager.On("ExecuteInternalCommands", mock.Anything, core.Zstd, mock.AnythingOfType("[]string"),
				"/tmp/html", map[string]string(nil), map[string]string(nil)).Return(
				func(ctx context.Context, commandType core.CommandType, commands []string, cwd string, envMap, secretData map[string]string) error {
					receivedCommands = commands
					fields := strings.Fields(commands[0])
					data, _ := os.ReadFile(fields[len(fields)-1])
					manifestContent = string(data)
					return tt.err
				}).Once()

			z := &zstdCompressor{logger: logger, execManager: execManager, execPath: "tar"}
			err := z.Compress(context.TODO(), "/tmp/report.tzst", "/tmp/html", "index.html", "src/a.html")
			if (err != nil) != tt.wantErr {
				t.Errorf("zstdCompressor.Compress() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			require.Len(t, receivedCommands, 1)
			fields := strings.Fields(receivedCommands[0])
			manifest := fields[len(fields)-1]
			assert.Equal(t, fmt.Sprintf("tar --posix -I 'zstd -5 -T0' -cf /tmp/report.tzst -C /tmp/html -T %s", manifest), receivedCommands[0])
			assert.Equal(t, "index.html\nsrc/a.html", manifestContent)

			_, statErr := os.Stat(manifest)
			assert.True(t, os.IsNotExist(statErr), "manifest is removed after compression")
		})
	}
}
