// Package publish uploads the generated subset file to S3-compatible
// storage so the client-side demo can fetch it from a bucket. When no
// bucket is configured the NoopUploader is used and publishing is skipped,
// keeping the tool in local-only mode.
package publish

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lexikit/glovesub/internal/config"
)

// ErrNotConfigured is returned when S3 publishing is not configured.
var ErrNotConfigured = errors.New("publish storage not configured")

// urlExpiry is how long pre-signed download links stay valid.
const urlExpiry = 24 * time.Hour

// Uploader publishes subset files and generates pre-signed download URLs.
type Uploader interface {
	// Upload uploads the subset file at filePath to the bucket.
	Upload(ctx context.Context, filePath string) error

	// PresignedURL returns a pre-signed URL for downloading the subset
	// named by filePath. Returns ErrNotConfigured without a bucket.
	PresignedURL(ctx context.Context, filePath string) (url string, expiry time.Time, err error)
}

// s3Client defines the minimal minio.Client operations used by S3Uploader.
// This interface enables testing with mock implementations.
type s3Client interface {
	FPutObject(ctx context.Context, bucket, objectName, filePath string) error
	PresignedGetObject(ctx context.Context, bucket, objectName string, expiry time.Duration) (*url.URL, error)
}

// minioClientWrapper adapts *minio.Client to the s3Client seam, pinning
// the option types the interface leaves out.
type minioClientWrapper struct {
	client *minio.Client
}

func (w *minioClientWrapper) FPutObject(ctx context.Context, bucket, objectName, filePath string) error {
	putOpts := minio.PutObjectOptions{
		ContentType: "application/json",
	}
	_, err := w.client.FPutObject(ctx, bucket, objectName, filePath, putOpts)
	return err
}

func (w *minioClientWrapper) PresignedGetObject(ctx context.Context, bucket, objectName string, expiry time.Duration) (*url.URL, error) {
	return w.client.PresignedGetObject(ctx, bucket, objectName, expiry, nil)
}

// S3Uploader publishes subsets to S3-compatible storage.
type S3Uploader struct {
	client s3Client
	bucket string
}

// Upload uploads the subset file at filePath under the subsets/ prefix.
func (u *S3Uploader) Upload(ctx context.Context, filePath string) error {
	if err := u.client.FPutObject(ctx, u.bucket, objectKey(filePath), filePath); err != nil {
		return fmt.Errorf("upload subset to S3: %w", err)
	}
	return nil
}

// PresignedURL returns a pre-signed GET URL for the published subset.
func (u *S3Uploader) PresignedURL(ctx context.Context, filePath string) (string, time.Time, error) {
	presigned, err := u.client.PresignedGetObject(ctx, u.bucket, objectKey(filePath), urlExpiry)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate pre-signed URL: %w", err)
	}
	return presigned.String(), time.Now().Add(urlExpiry), nil
}

// NoopUploader is used when publishing is not configured.
// Upload is a no-op and PresignedURL returns ErrNotConfigured.
type NoopUploader struct{}

// Upload is a no-op when publishing is not configured.
func (u *NoopUploader) Upload(ctx context.Context, filePath string) error {
	return nil
}

// PresignedURL returns ErrNotConfigured when publishing is not configured.
func (u *NoopUploader) PresignedURL(ctx context.Context, filePath string) (string, time.Time, error) {
	return "", time.Time{}, ErrNotConfigured
}

// NewUploader creates the appropriate Uploader based on configuration.
// Returns NoopUploader when bucket is empty, S3Uploader otherwise.
func NewUploader(cfg config.PublishConfig) (Uploader, error) {
	if cfg.Bucket == "" {
		return &NoopUploader{}, nil
	}

	useSSL := true
	if cfg.UseSSL != nil {
		useSSL = *cfg.UseSSL
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create S3 client: %w", err)
	}

	return &S3Uploader{
		client: &minioClientWrapper{client: client},
		bucket: cfg.Bucket,
	}, nil
}

// objectKey returns the S3 object key for a subset file.
// Convention: subsets/{file_name}
func objectKey(filePath string) string {
	return "subsets/" + path.Base(filePath)
}
