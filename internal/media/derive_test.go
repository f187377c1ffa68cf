package media_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"travel/internal/media"
	"travel/pkg/serrors"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	opts := media.DeriveOptions{MaxWidth: 300, MaxHeight: 200, Quality: 85}

	tests := []struct {
		name   string
		src    image.Image
		format imaging.Format
		want   image.Point
	}{
		{"landscape", imaging.New(1000, 500, color.White), imaging.PNG, image.Pt(300, 150)},
		{"portrait", imaging.New(400, 800, color.White), imaging.JPEG, image.Pt(100, 200)},
		{"exact box", imaging.New(300, 200, color.White), imaging.GIF, image.Pt(300, 200)},
		{"small", imaging.New(100, 50, color.White), imaging.BMP, image.Pt(100, 50)},
		{"palette", image.NewPaletted(image.Rect(0, 0, 600, 100), color.Palette{color.Black, color.White}),
			imaging.GIF, image.Pt(300, 50)},
		{"tiff", imaging.New(600, 400, color.Black), imaging.TIFF, image.Pt(300, 200)},
		{"rounds width up", imaging.New(1000, 667, color.White), imaging.PNG, image.Pt(300, 200)},
		{"rounds height up", imaging.New(1000, 333, color.White), imaging.PNG, image.Pt(300, 100)},
		{"thin strip", imaging.New(3000, 2, color.White), imaging.PNG, image.Pt(300, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, media.Derive(&out, bytes.NewReader(encode(t, tt.src, tt.format)), opts))

			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out.Bytes()))
			require.NoError(t, err)
			require.Equal(t, tt.want, image.Pt(cfg.Width, cfg.Height))
			require.Equal(t, color.YCbCrModel, cfg.ColorModel)
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	opts := media.DeriveOptions{MaxWidth: 300, MaxHeight: 200, Quality: 85}
	src := encode(t, imaging.New(640, 480, color.NRGBA{R: 10, G: 20, B: 30, A: 128}), imaging.PNG)

	var a, b bytes.Buffer
	require.NoError(t, media.Derive(&a, bytes.NewReader(src), opts))
	require.NoError(t, media.Derive(&b, bytes.NewReader(src), opts))
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestDerive_Undecodable(t *testing.T) {
	var out bytes.Buffer
	err := media.Derive(&out, bytes.NewReader([]byte{0xff, 0xd8, 0x00}), media.DeriveOptions{
		MaxWidth: 300, MaxHeight: 200, Quality: 85,
	})
	require.True(t, errors.Is(err, serrors.ErrUndecodable))

	var decodeErr *media.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Empty(t, decodeErr.Path)
	require.Zero(t, out.Len())
}
