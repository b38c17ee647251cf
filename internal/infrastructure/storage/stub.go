// Package storage provides object storage for product images.
package storage

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/electrostore/backend/internal/application/catalog"
)

// StubObjectStorage is a development stand-in for a real image bucket.
// Upload and download URLs point at a fake host and nothing is stored.
type StubObjectStorage struct {
	BaseURL string
}

// NewStubObjectStorage creates a new stub storage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.invalid",
	}
}

var _ catalogapp.ObjectStorageService = (*StubObjectStorage)(nil)

// GenerateUploadURL returns a fake presigned upload URL
func (s *StubObjectStorage) GenerateUploadURL(
	ctx context.Context,
	storageKey, contentType string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage: key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey, expiresAt, nil
}

// GenerateDownloadURL returns a fake presigned download URL
func (s *StubObjectStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage: key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + storageKey, expiresAt, nil
}

// DeleteObject is a no-op
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage: key is required")
	}
	return nil
}

// ObjectExists reports true so upload confirmation flows keep working
// in development
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage: key is required")
	}
	return true, nil
}
