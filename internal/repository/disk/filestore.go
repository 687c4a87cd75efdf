// Package disk stores uploaded files on the local filesystem.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/viddeck/viddeck/internal/domain"
)

// FileStore implements domain.FileStore beneath a single root directory.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory if needed and returns a store
// rooted there.
func NewFileStore(root string) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{root: abs}, nil
}

// Save streams r into a new file. The name must be a bare filename;
// anything that would escape the root is rejected.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (int64, string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, "", fmt.Errorf("create stored file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(path)
		return 0, "", fmt.Errorf("write stored file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, "", fmt.Errorf("close stored file: %w", err)
	}
	return written, path, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete stored file: %w", err)
	}
	return nil
}

// Root returns the absolute directory stored files live in.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid storage name %q", domain.ErrInvalidInput, name)
	}
	return filepath.Join(s.root, name), nil
}
