package domain

import (
	"context"
	"io"
)

// UploadedFile describes a stored upload. It is built per request and
// never persisted beyond the filesystem artifact and the response body.
type UploadedFile struct {
	StoredName   string
	OriginalName string
	MimeType     string
	SizeBytes    int64
	StoragePath  string
	URL          string
}

// FileStore persists raw upload bytes under a storage name.
type FileStore interface {
	// Save streams r into a file named name and returns the number of
	// bytes written and the path of the stored file.
	Save(ctx context.Context, name string, r io.Reader) (int64, string, error)
	Delete(ctx context.Context, name string) error
	// Root returns the directory stored files live in.
	Root() string
}
