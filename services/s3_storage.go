package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileStorage stores receipt images in an S3-compatible bucket (Cloudflare
// R2). Objects are served from a public base URL rather than presigned links,
// since stored receipt URLs are persisted on the expense record.
type S3FileStorage struct {
	client        *s3.Client
	bucketName    string
	publicBaseURL string
}

// NewS3FileStorage creates an R2-backed storage instance.
func NewS3FileStorage(accountID, bucketName, accessKeyID, secretAccessKey, publicBaseURL string) (*S3FileStorage, error) {
	if accountID == "" || accessKeyID == "" || secretAccessKey == "" {
		return nil, fmt.Errorf("incomplete S3 storage credentials")
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	client := s3.New(s3.Options{
		Region:       "auto",
		BaseEndpoint: &endpoint,
		Credentials:  credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	})

	return &S3FileStorage{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// validateKey rejects storage keys containing path traversal segments.
func validateKey(key string) error {
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("path traversal detected in storage key")
		}
	}
	return nil
}

// Save uploads an object to the bucket.
func (s *S3FileStorage) Save(ctx context.Context, path string, reader io.Reader, size int64) error {
	if err := validateKey(path); err != nil {
		return err
	}
	contentType := "image/jpeg"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucketName,
		Key:         &path,
		Body:        reader,
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("s3 put object failed: %w", err)
	}
	return nil
}

// PublicURL returns the public URL for a stored object.
func (s *S3FileStorage) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimPrefix(path, "/")
}
