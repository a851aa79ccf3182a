package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores blobs as flat files under a root directory. Paths are
// uuid-named, so concurrent writers never collide.
type Local struct {
	root string
}

// NewLocal creates the root directory if needed and returns the store.
// Creating an existing root is a no-op.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: root}, nil
}

// Write persists bytes at a freshly allocated path and returns it.
func (l *Local) Write(ctx context.Context, r io.Reader) (string, error) {
	path := filepath.Join(l.root, uuid.NewString())
	if err := l.Put(ctx, path, r); err != nil {
		return "", err
	}
	return path, nil
}

// Put persists bytes at the given path, replacing any previous content.
func (l *Local) Put(_ context.Context, path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Open returns a reader over the blob at path.
func (l *Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Exists reports whether a blob lives at path.
func (l *Local) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
