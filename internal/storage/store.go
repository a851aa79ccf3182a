package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotExist reports that no blob lives at the requested path.
var ErrNotExist = errors.New("blob does not exist")

// Store persists raw bytes at opaque paths. Write allocates a fresh
// collision-free path; Put targets a caller-chosen path and is used for
// derived blobs such as thumbnail variants.
type Store interface {
	Write(ctx context.Context, r io.Reader) (string, error)
	Put(ctx context.Context, path string, r io.Reader) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// VariantPath names a resized variant beside its original blob. The
// rule is deterministic so regeneration is idempotent and readers can
// derive the path without extra state.
func VariantPath(path string, width int) string {
	return fmt.Sprintf("%s_%d", path, width)
}
