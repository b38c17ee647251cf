package catalog

import (
	"context"
	"time"
)

// ObjectStorageService abstracts presigned access to the product image bucket
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned PUT URL for the given storage key
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for the given storage key
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks whether an object is present in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
