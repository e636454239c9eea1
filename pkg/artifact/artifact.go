// Package artifact stores the rendered HTML report as a named build artifact.
package artifact

import (
	"fmt"
	"mime"
	"path/filepath"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/global"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
	units "github.com/docker/go-units"
)

// New returns the ArtifactStore selected by cfg.ArtifactStore. azureClient and
// zstd are only used by the azure store and may be nil otherwise.
func New(cfg *config.ReporterConfig,
	azureClient core.AzureClient,
	zstd core.ZstdCompressor,
	logger lumber.Logger) (core.ArtifactStore, error) {
	switch cfg.ArtifactStore {
	case config.LocalStore, "":
		return &localStore{dir: cfg.ArtifactDir, format: cfg.ArtifactFormat, logger: logger}, nil
	case config.AzureStore:
		if azureClient == nil {
			return nil, errs.ErrAzureCredentials
		}
		return &azureStore{client: azureClient, zstd: zstd, format: cfg.ArtifactFormat, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.ArtifactStore, errs.ErrUnsupportedArtifactStore)
	}
}

func mimeType(file string) string {
	if t := mime.TypeByExtension(filepath.Ext(file)); t != "" {
		return t
	}
	return global.DefaultAzureMimeType
}

func humanSize(size int64) string {
	return units.HumanSize(float64(size))
}
