package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/viddeck/viddeck/internal/domain"
)

// MaxUploadBytes caps a single video upload.
const MaxUploadBytes = 100 << 20 // 100MB

var allowedVideoTypes = map[string]struct{}{
	"video/mp4":        {},
	"video/webm":       {},
	"video/ogg":        {},
	"video/quicktime":  {},
	"video/x-msvideo":  {},
	"video/x-matroska": {},
}

// UploadService validates video uploads and persists their raw bytes to
// the file store. No metadata survives beyond the returned value.
type UploadService struct {
	files domain.FileStore
}

// NewUploadService creates a new UploadService.
func NewUploadService(files domain.FileStore) *UploadService {
	return &UploadService{files: files}
}

// Store validates the declared content type, streams r to the file store
// under a randomized name, and returns the upload metadata. Files over
// MaxUploadBytes are removed again and rejected with ErrTooLarge.
func (s *UploadService) Store(ctx context.Context, originalName, contentType string, r io.Reader) (*domain.UploadedFile, error) {
	mediaType := normalizeMediaType(contentType)
	if _, ok := allowedVideoTypes[mediaType]; !ok {
		return nil, fmt.Errorf("%w: invalid file type, only video files are allowed", domain.ErrInvalidInput)
	}

	name := storedName(originalName)
	written, path, err := s.files.Save(ctx, name, io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if written > MaxUploadBytes {
		s.files.Delete(ctx, name)
		return nil, fmt.Errorf("%w: file size exceeds the 100MB limit", domain.ErrTooLarge)
	}

	return &domain.UploadedFile{
		StoredName:   name,
		OriginalName: originalName,
		MimeType:     mediaType,
		SizeBytes:    written,
		StoragePath:  path,
		URL:          "/uploads/" + name,
	}, nil
}

func normalizeMediaType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// storedName keeps the original extension but randomizes the rest, so
// two uploads of the same file never collide on disk.
func storedName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return "video-" + uuid.NewString() + ext
}
