// Package blob abstracts the file store holding uploaded images and their
// derived thumbnails. Files are addressed by slash separated paths relative to
// the store root, e.g. "hotel_images/lobby.jpg".
package blob

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned by Open when no file exists at the given path.
	ErrNotFound = errors.New("blob not found")
	// ErrInvalidName is returned for paths that cannot name a file in the store.
	ErrInvalidName = errors.New("invalid blob name")
)

// Store reads and writes files by relative path.
type Store interface {
	// Open returns a reader for the file at path. Callers must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Put stores the content of r under path. When path is already taken a
	// free name is chosen in the same directory. The stored path is returned.
	Put(ctx context.Context, path string, r io.Reader) (string, error)
}
