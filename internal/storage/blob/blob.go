package blob

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"crackKeeper/internal/config"
	"crackKeeper/internal/models"
)

// Every image object lives under one prefix so the bucket can be shared.
const imagePrefix = "Images/"

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// SanitizeName makes a file name safe to use as an object key: every character
// outside [A-Za-z0-9._-] becomes an underscore and runs of underscores collapse
// to one.
func SanitizeName(name string) string {
	return underscoreRuns.ReplaceAllString(unsafeChars.ReplaceAllString(name, "_"), "_")
}

type Store struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// New connects to the blob store and ensures the bucket exists.
func New(cfg *config.BlobStorage) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init blob store client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: cfg.Bucket, useSSL: cfg.UseSSL}, nil
}

// Upload stores the image bytes under Images/<sanitized name> and returns the
// resolved fetch URL together with the store-internal path needed for deletion.
func (s *Store) Upload(ctx context.Context, name, contentType string, r io.Reader, size int64) (*models.UploadedImage, error) {
	path := imagePrefix + SanitizeName(name)

	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", path, err)
	}

	return &models.UploadedImage{
		URL:  s.objectURL(path),
		Path: path,
	}, nil
}

func (s *Store) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove image %s: %w", path, err)
	}

	return nil
}

// objectURL builds a direct fetch URL. The bucket carries a public read policy;
// presigned URLs expire too soon for records that live for years.
func (s *Store) objectURL(path string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, path)
}
