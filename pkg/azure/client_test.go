package azure

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LambdaTest/lcov-reporter/config"
	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/LambdaTest/lcov-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = base64.StdEncoding.EncodeToString([]byte("not-a-real-storage-key"))

func TestNewAzureBlobEnv(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	tests := []struct {
		name    string
		cfg     config.Azure
		wantErr error
	}{
		{"missing account", config.Azure{ContainerName: "coverage", StorageAccessKey: testKey}, errs.ErrAzureCredentials},
		{"missing key", config.Azure{ContainerName: "coverage", StorageAccountName: "acct"}, errs.ErrAzureCredentials},
		{"missing container", config.Azure{StorageAccountName: "acct", StorageAccessKey: testKey}, errs.ErrAzureCredentials},
		{"valid", config.Azure{ContainerName: "coverage", StorageAccountName: "acct", StorageAccessKey: testKey}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewAzureBlobEnv(tt.cfg, logger)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	_, err := NewAzureBlobEnv(config.Azure{ContainerName: "c", StorageAccountName: "acct", StorageAccessKey: "%%%"}, logger)
	assert.Error(t, err, "key must be base64")
}

func TestStore_Exists(t *testing.T) {
	logger, _ := testutils.GetObservedLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/coverage/report/index.html":
			w.WriteHeader(http.StatusOK)
		case "/coverage/report/missing.html":
			w.Header().Set("x-ms-error-code", "BlobNotFound")
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Header().Set("x-ms-error-code", "AuthorizationFailure")
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	store, err := newStore(server.URL, config.Azure{ContainerName: "coverage", StorageAccountName: "acct", StorageAccessKey: testKey}, logger)
	require.NoError(t, err)

	exists, err := store.Exists(context.TODO(), "report/index.html")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(context.TODO(), "report/missing.html")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Exists(context.TODO(), "forbidden")
	assert.Error(t, err)
}
