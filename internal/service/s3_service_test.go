package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestS3Service(endpoint string) *S3Service {
	client := newLocalS3Client(&config.S3Config{
		Bucket:   "menu",
		Region:   "us-east-1",
		Endpoint: endpoint,
		Local:    true,
	})
	return newS3Service(client, "menu")
}

func TestS3Service_PresignedURLs(t *testing.T) {
	svc := newTestS3Service("http://127.0.0.1:9000")
	ctx := context.Background()

	getURL, err := svc.GeneratePresignedGetURL(ctx, "items/1/a", 15*time.Minute)
	require.NoError(t, err)

	parsed, err := url.Parse(getURL)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", parsed.Host)
	assert.Equal(t, "/menu/items/1/a", parsed.Path)
	assert.Equal(t, "900", parsed.Query().Get("X-Amz-Expires"))

	putURL, err := svc.GeneratePresignedPutURL(ctx, "items/1/b", "image/png", time.Minute)
	require.NoError(t, err)

	parsed, err = url.Parse(putURL)
	require.NoError(t, err)
	assert.Equal(t, "/menu/items/1/b", parsed.Path)
	assert.Equal(t, "60", parsed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, parsed.Query().Get("X-Amz-Signature"))
}

func TestS3Service_ObjectContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/menu/items/1/a":
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := newTestS3Service(server.URL)

	contentType, err := svc.ObjectContentType(context.Background(), "items/1/a")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	_, err = svc.ObjectContentType(context.Background(), "items/1/missing")
	assert.ErrorIs(t, err, apperror.ErrImageNotUploaded)
}
