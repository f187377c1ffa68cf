package blob_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"travel/pkg/blob"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, s blob.Store, p string) []byte {
	t.Helper()

	r, err := s.Open(context.Background(), p)
	require.NoError(t, err)
	defer r.Close()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return b
}

func TestFS_PutAndOpen(t *testing.T) {
	s := blob.NewMemFS()
	ctx := context.Background()

	stored, err := s.Put(ctx, "hotel_images/lobby.jpg", strings.NewReader("original"))
	require.NoError(t, err)
	require.Equal(t, "hotel_images/lobby.jpg", stored)
	require.Equal(t, []byte("original"), readAll(t, s, stored))
}

func TestFS_PutTakenNameGetsSuffix(t *testing.T) {
	s := blob.NewMemFS()
	ctx := context.Background()

	first, err := s.Put(ctx, "hotel_images/lobby.jpg", strings.NewReader("original"))
	require.NoError(t, err)

	second, err := s.Put(ctx, "hotel_images/lobby.jpg", strings.NewReader("thumbnail"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.True(t, strings.HasPrefix(second, "hotel_images/lobby_"), second)
	require.True(t, strings.HasSuffix(second, ".jpg"), second)
	require.Len(t, second, len("hotel_images/lobby_")+7+len(".jpg"))

	// the original stays untouched
	require.Equal(t, []byte("original"), readAll(t, s, first))
	require.Equal(t, []byte("thumbnail"), readAll(t, s, second))
}

func TestFS_PutShortensLongNames(t *testing.T) {
	s := blob.NewMemFS().WithMaxNameLength(100)
	ctx := context.Background()

	long := "hotel_images/" + strings.Repeat("a", 81) + ".jpg"
	require.Len(t, long, 98)

	first, err := s.Put(ctx, long, strings.NewReader("original"))
	require.NoError(t, err)
	require.Equal(t, long, first)

	second, err := s.Put(ctx, long, strings.NewReader("thumbnail"))
	require.NoError(t, err)
	require.Len(t, second, 100)
	require.True(t, strings.HasPrefix(second, "hotel_images/"+strings.Repeat("a", 73)+"_"), second)
	require.True(t, strings.HasSuffix(second, ".jpg"), second)
	require.Equal(t, []byte("thumbnail"), readAll(t, s, second))

	tooLong := "stay_images/" + strings.Repeat("b", 100) + ".png"
	stored, err := s.Put(ctx, tooLong, strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, "stay_images/"+strings.Repeat("b", 84)+".png", stored)
}

func TestFS_PutShortensOnRuneBoundary(t *testing.T) {
	s := blob.NewMemFS().WithMaxNameLength(100)

	stored, err := s.Put(context.Background(), "hotel_images/"+strings.Repeat("é", 45)+".jpg", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, utf8.ValidString(stored), stored)
	require.Equal(t, "hotel_images/"+strings.Repeat("é", 41)+".jpg", stored)
}

func TestFS_PutNameCannotFit(t *testing.T) {
	s := blob.NewMemFS().WithMaxNameLength(16)

	_, err := s.Put(context.Background(), "hotel_images/lobby.jpg", strings.NewReader("x"))
	require.ErrorIs(t, err, blob.ErrInvalidName)
}

func TestFS_OpenMissing(t *testing.T) {
	s := blob.NewMemFS()

	_, err := s.Open(context.Background(), "stay_images/missing.png")
	require.ErrorIs(t, err, blob.ErrNotFound)
}

func TestFS_PathsStayInsideRoot(t *testing.T) {
	dir := t.TempDir()
	s := blob.NewFS(filepath.Join(dir, "media"))
	ctx := context.Background()

	stored, err := s.Put(ctx, "../../hotel_images/escape.jpg", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	require.Equal(t, "hotel_images/escape.jpg", stored)

	_, err = os.Stat(filepath.Join(dir, "media", "hotel_images", "escape.jpg"))
	require.NoError(t, err)

	_, err = s.Put(ctx, "/", bytes.NewReader(nil))
	require.ErrorIs(t, err, blob.ErrInvalidName)
}

func TestFS_PutCanceledContext(t *testing.T) {
	s := blob.NewMemFS()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Put(ctx, "hotel_images/lobby.jpg", strings.NewReader("x"))
	require.ErrorIs(t, err, context.Canceled)
}
