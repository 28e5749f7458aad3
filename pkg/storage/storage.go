package storage

import (
	"context"
	"io"
)

// Store persists uploaded media and returns a stable reference to it.
type Store interface {
	Save(ctx context.Context, owner, filename string, r io.Reader) (string, error)
}
