package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"travel/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrUndecodable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("unexpected EOF")

	e1 := serrors.With(serrors.ErrNotFound, "hotel %d not found", 42)
	require.Equal(t, "hotel 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUndecodable, base, "decoding hotel_images/a.png")
	require.Equal(t, "decoding hotel_images/a.png: unexpected EOF", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUndecodable, base, "reading")

	require.ErrorIs(t, e, serrors.ErrUndecodable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)

	wrapped := fmt.Errorf("could not derive thumbnail: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrUndecodable)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "unknown kind"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnavailable, base, "blob store")
	require.Equal(t, serrors.ErrUnavailable, e.Kind())
	require.Equal(t, "blob store", e.Message())
	require.Equal(t, base, e.Cause())
}
