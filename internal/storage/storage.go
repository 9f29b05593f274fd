package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object-storage abstraction used for clinical
// documents: doctor verification credentials and record attachments.
// Implementations must rely on streaming I/O only; document content never
// touches local disk.

// PutOptions define optional parameters for uploading a document.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored document.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible document store interface. Methods use context
// and streaming readers; keys are opaque to callers and recorded on the
// owning entity (e.g. doctor.VerificationDocuments).
type Storage interface {
	// Put uploads a document under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get retrieves a document's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes a document by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading the document
	// without credentials, e.g. for a verification reviewer.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
