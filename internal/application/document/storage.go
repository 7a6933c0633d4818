package document

import (
	"context"
	"time"
)

// ObjectStorage abstracts the presigned-URL object store documents live in
type ObjectStorage interface {
	// GenerateUploadURL returns a presigned PUT URL and its expiry
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL and its expiry
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes the object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists reports whether the object is present in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
