package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreSave(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	path, err := store.Save(context.Background(), "test", "photo.png", bytes.NewReader([]byte("payload")))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if filepath.Dir(path) != filepath.Join(root, "test") {
		t.Errorf("blob written to %q, want owner directory %q", path, filepath.Join(root, "test"))
	}
	if !strings.HasSuffix(path, "_photo.png") {
		t.Errorf("blob name %q does not keep the original filename suffix", path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("blob read failed: %v", err)
	}
	if string(contents) != "payload" {
		t.Errorf("blob contents = %q, want %q", contents, "payload")
	}
}

func TestFileStoreSaveNoCollisions(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	first, err := store.Save(context.Background(), "test", "photo.png", bytes.NewReader([]byte("a")))
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := store.Save(context.Background(), "test", "photo.png", bytes.NewReader([]byte("b")))
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if first == second {
		t.Errorf("two uploads of the same filename share the path %q", first)
	}
}

func TestFileStoreSaveCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Save(ctx, "test", "photo.png", bytes.NewReader([]byte("a"))); err == nil {
		t.Error("Save with cancelled context succeeded, want error")
	}
}
