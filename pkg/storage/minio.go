package storage

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the slice of object storage the attachment service needs.
type ObjectStore interface {
	Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) error
	PresignedGet(ctx context.Context, objectKey, downloadName string, expiry time.Duration) (*url.URL, error)
	Remove(ctx context.Context, objectKey string) error
}

type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to MinIO and ensures the attachment bucket exists.
func NewMinioStore() (*MinioStore, error) {
	client, err := minio.New(config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &MinioStore{client: client, bucket: config.MinioBucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) PresignedGet(ctx context.Context, objectKey, downloadName string, expiry time.Duration) (*url.URL, error) {
	params := make(url.Values)
	params.Set("response-content-disposition", "attachment; filename=\""+downloadName+"\"")
	return s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, params)
}

func (s *MinioStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
