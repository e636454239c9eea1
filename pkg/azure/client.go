package azure

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/core"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/pkg/lumber"
)

var (
	defaultBufferSize int64 = 3 * 1024 * 1024
	defaultMaxBuffers       = 4
	defaultMaxRetries int32 = 3
	serviceURLFormat        = "https://%s.blob.core.windows.net/"
)

// Store represents the azure storage
type Store struct {
	containerName   string
	containerClient *container.Client
	logger          lumber.Logger
}

// NewAzureBlobEnv returns a new Azure blob store authenticated with the shared account key.
func NewAzureBlobEnv(cfg config.Azure, logger lumber.Logger) (core.AzureClient, error) {
	return newStore(fmt.Sprintf(serviceURLFormat, cfg.StorageAccountName), cfg, logger)
}

func newStore(serviceURL string, cfg config.Azure, logger lumber.Logger) (*Store, error) {
	if cfg.StorageAccountName == "" || cfg.StorageAccessKey == "" || cfg.ContainerName == "" {
		return nil, errs.ErrAzureCredentials
	}
	credential, err := azblob.NewSharedKeyCredential(cfg.StorageAccountName, cfg.StorageAccessKey)
	if err != nil {
		logger.Errorf("invalid azure shared key credential, error: %v", err)
		return nil, err
	}
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, credential, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: defaultMaxRetries},
		},
	})
	if err != nil {
		return nil, err
	}
	return &Store{
		containerName:   cfg.ContainerName,
		containerClient: client.ServiceClient().NewContainerClient(cfg.ContainerName),
		logger:          logger,
	}, nil
}

// Create function ulploads blob to URI
func (s *Store) Create(ctx context.Context, path string, reader io.Reader, mimeType string) (string, error) {
	blobClient := s.containerClient.NewBlockBlobClient(path)
	_, err := blobClient.UploadStream(ctx, reader, &blockblob.UploadStreamOptions{
		BlockSize:   defaultBufferSize,
		Concurrency: defaultMaxBuffers,
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &mimeType},
	})
	if err != nil {
		s.logger.Errorf("failed to upload blob %s to container %s, error: %v", path, s.containerName, err)
		return "", handleError(err)
	}
	return blobClient.URL(), nil
}

// Exists checks the blob if exists
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.containerClient.NewBlobClient(path).GetProperties(ctx, nil)
	if err != nil {
		if handleError(err) == errs.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("check if object exists, %w", err)
	}
	return true, nil
}

func handleError(err error) error {
	if err == nil {
		return nil
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return errs.ErrNotFound
	}
	return err
}
