package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// suffixLength is the number of random characters appended to a taken name.
const suffixLength = 7

// maxNameAttempts bounds the search for a free name.
const maxNameAttempts = 10

// FS is a Store backed by an afero file system.
type FS struct {
	fs afero.Fs
	// maxNameLength bounds the length of stored paths, 0 means unbounded.
	maxNameLength int
}

// NewFS returns a Store rooted at dir on the local disk.
func NewFS(dir string) *FS {
	return &FS{fs: afero.NewBasePathFs(afero.NewOsFs(), dir)}
}

// NewMemFS returns a Store kept in memory.
func NewMemFS() *FS {
	return &FS{fs: afero.NewMemMapFs()}
}

// WithMaxNameLength makes Put shorten the file name of p, keeping its
// directory and extension, so that stored paths are at most n bytes long.
func (s *FS) WithMaxNameLength(n int) *FS {
	return &FS{fs: s.fs, maxNameLength: n}
}

// Open opens the file at p.
func (s *FS) Open(_ context.Context, p string) (io.ReadCloser, error) {
	name, err := clean(p)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}

		return nil, fmt.Errorf("could not open blob %s: %w", p, err)
	}

	return f, nil
}

// Put writes r under p, or under p with a random suffix before the extension
// when p already exists ("lobby.jpg" becomes "lobby_a1b2c3d.jpg").
func (s *FS) Put(ctx context.Context, p string, r io.Reader) (string, error) {
	name, err := clean(p)
	if err != nil {
		return "", err
	}

	name, err = s.availableName(ctx, name)
	if err != nil {
		return "", err
	}

	if err := afero.WriteReader(s.fs, name, r); err != nil {
		return "", fmt.Errorf("could not write blob %s: %w", name, err)
	}

	return name, nil
}

func (s *FS) availableName(ctx context.Context, name string) (string, error) {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate, err := s.fit(name, base, "", ext)
	if err != nil {
		return "", err
	}
	for range maxNameAttempts {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("could not pick blob name: %w", err)
		}

		exists, err := afero.Exists(s.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("could not stat blob %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}

		suffix := "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
		if candidate, err = s.fit(name, base, suffix, ext); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("could not find a free name for blob %s", name)
}

// fit joins base, suffix and ext, cutting the end of the file name in base
// when the result would exceed maxNameLength.
func (s *FS) fit(name, base, suffix, ext string) (string, error) {
	candidate := base + suffix + ext
	if s.maxNameLength <= 0 || len(candidate) <= s.maxNameLength {
		return candidate, nil
	}

	dir, root := path.Split(base)
	cut := len(root) - (len(candidate) - s.maxNameLength)
	for cut > 0 && !utf8.RuneStart(root[cut]) {
		cut--
	}
	if cut <= 0 {
		return "", fmt.Errorf("%w: %s cannot be shortened to %d characters", ErrInvalidName, name, s.maxNameLength)
	}

	return dir + root[:cut] + suffix + ext, nil
}

// clean normalizes p to a relative slash path. Rooting it first keeps ".."
// segments from climbing above the store root.
func clean(p string) (string, error) {
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, p)
	}

	return name, nil
}
