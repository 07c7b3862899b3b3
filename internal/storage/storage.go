package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"osisweb/internal/config"
)

// Storage persists uploaded image blobs and hands back publicly resolvable
// URLs. The core never touches image bytes beyond streaming them through;
// only the returned URL strings are stored.
type Storage interface {
	// Upload stores content under the given folder hint and returns the
	// public URL of the stored object.
	Upload(ctx context.Context, folder string, filename string, content io.Reader, contentType string) (string, error)
}

func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Storage(cfg.S3Bucket, cfg.S3Region)
	case "local":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
	default:
		return nil, fmt.Errorf("storage: unknown storage type %q", cfg.Type)
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func sanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}
