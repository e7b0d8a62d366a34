package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage provides an abstraction over receipt image storage backends.
type FileStorage interface {
	Save(ctx context.Context, path string, reader io.Reader, size int64) error
	PublicURL(path string) string
}

// LocalFileStorage stores files on the local filesystem. It is the fallback
// backend when no S3 credentials are configured; files are served by the
// application itself under /uploads.
type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) *LocalFileStorage {
	_ = os.MkdirAll(basePath, 0755)
	return &LocalFileStorage{basePath: basePath}
}

// BasePath returns the storage root, used to mount the static file route.
func (s *LocalFileStorage) BasePath() string {
	return s.basePath
}

// containedPath resolves the full path and verifies it stays within basePath.
func (s *LocalFileStorage) containedPath(path string) (string, error) {
	fullPath := filepath.Join(s.basePath, path)
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base path: %w", err)
	}
	absFull, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve full path: %w", err)
	}
	if !strings.HasPrefix(absFull, absBase+string(filepath.Separator)) && absFull != absBase {
		return "", fmt.Errorf("path traversal detected")
	}
	return absFull, nil
}

// Save stores a file at the given path relative to basePath.
func (s *LocalFileStorage) Save(ctx context.Context, path string, reader io.Reader, size int64) error {
	fullPath, err := s.containedPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// PublicURL returns the application-relative URL for a stored file.
func (s *LocalFileStorage) PublicURL(path string) string {
	return "/uploads/" + strings.TrimPrefix(path, "/")
}
