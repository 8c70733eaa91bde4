package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore keeps uploaded detection media in MinIO/S3.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

var globalStore *ObjectStore

// InitObjectStore connects the global store and ensures the bucket
// exists. Returns an error when object storage is not configured; the
// detection service treats that as "keep nothing".
func InitObjectStore() (*ObjectStore, error) {
	if globalStore != nil {
		return globalStore, nil
	}

	cfg := config.AppConfig.Storage
	if cfg.Provider != "minio" && cfg.Provider != "s3" {
		return nil, fmt.Errorf("object storage provider is not minio/s3")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint not configured")
	}

	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	store := &ObjectStore{client: client, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	globalStore = store
	return store, nil
}

// GetObjectStore returns the global store, nil when not initialized.
func GetObjectStore() *ObjectStore {
	return globalStore
}

// Put uploads one object and returns its key.
func (s *ObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return key, nil
}

// Remove deletes one object.
func (s *ObjectStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
