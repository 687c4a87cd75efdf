package disk_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viddeck/viddeck/internal/domain"
	"github.com/viddeck/viddeck/internal/repository/disk"
)

func newTestStore(t *testing.T) *disk.FileStore {
	t.Helper()
	store, err := disk.NewFileStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	written, path, err := store.Save(ctx, "video-abc.mp4", strings.NewReader("fake video bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if written != int64(len("fake video bytes")) {
		t.Fatalf("expected %d bytes written, got %d", len("fake video bytes"), written)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "fake video bytes" {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestFileStore_SaveDuplicateName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, _, err := store.Save(ctx, "dup.mp4", strings.NewReader("one")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, _, err := store.Save(ctx, "dup.mp4", strings.NewReader("two")); err == nil {
		t.Fatal("expected error for duplicate storage name")
	}
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../escape.mp4", "a/b.mp4"} {
		if _, _, err := store.Save(ctx, name, strings.NewReader("x")); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("name %q: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestFileStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, path, err := store.Save(ctx, "gone.mp4", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "gone.mp4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err: %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, "gone.mp4"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}
