package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const coverCacheControl = "public, max-age=86400"

// NewClient creates a Google Cloud Storage client. If credsPath is empty,
// Application Default Credentials are used.
func NewClient(ctx context.Context, credsPath string) (*gcs.Client, error) {
	if credsPath == "" {
		return gcs.NewClient(ctx)
	}
	return gcs.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSCoverStorage uploads post cover images to a Google Cloud Storage bucket.
type GCSCoverStorage struct {
	client *gcs.Client
	bucket string
}

func NewGCSCoverStorage(client *gcs.Client, bucket string) *GCSCoverStorage {
	return &GCSCoverStorage{client: client, bucket: bucket}
}

// Upload streams r to objectPath and returns the public object URL.
// Objects are expected to be publicly readable through bucket policy.
func (s *GCSCoverStorage) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if s.client == nil || s.bucket == "" {
		return "", errors.New("gcs not configured")
	}
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = coverCacheControl
	wc.ChunkSize = 0 // covers are small, single request upload
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("write %s: %w", objectPath, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", objectPath, err)
	}
	return PublicURL(s.bucket, objectPath), nil
}

func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
