package tracefile

import (
	"path/filepath"
	"testing"

	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	dir := testutils.Path(testutils.TraceFilesDir)
	l := NewLocator(dir, logger)

	tests := []struct {
		name    string
		pattern string
		want    []string
		wantErr bool
	}{
		{"recursive", "**/*.info", []string{"app.info", filepath.Join("nested", "lib.info"), "nolf.info"}, false},
		{"top level only", "*.info", []string{"app.info", "nolf.info"}, false},
		{"leading dot slash", "./nested/*.info", []string{filepath.Join("nested", "lib.info")}, false},
		{"absolute", filepath.Join(dir, "nested", "*.info"), []string{filepath.Join(dir, "nested", "lib.info")}, false},
		{"directories are skipped", "nest*", []string{}, false},
		{"no match", "missing/**/*.info", []string{}, false},
		{"bad pattern", "[", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Locate(tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestLocator_LocateWarnsOnEmptyResult(t *testing.T) {
	logger, logs := testutils.GetObservedLogger()
	l := NewLocator(t.TempDir(), logger)

	got, err := l.Locate("coverage/*.info")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessageSnippet("no coverage files match").Len())
}
