package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore writes blobs under root, one subdirectory per owner. Files
// are prefixed with a generated uuid so concurrent uploads of the same
// filename never collide.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Save(ctx context.Context, owner, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, owner)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create owner directory: %w", err)
	}

	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return path, nil
}
