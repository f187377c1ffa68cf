package media

import (
	"fmt"
	"image"
	"io"
	"math"
	"travel/pkg/serrors"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

// DecodeError reports an original image whose bytes could not be decoded.
// It matches serrors.ErrUndecodable.
type DecodeError struct {
	// Path is the stored path of the original, when known.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not decode image: %v", e.Err)
	}

	return fmt.Sprintf("could not decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, serrors.ErrUndecodable) hold for decode failures.
func (e *DecodeError) Is(target error) bool {
	return target == serrors.ErrUndecodable //nolint: errorlint
}

// DeriveOptions bound the derived image.
type DeriveOptions struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

// Derive decodes the image read from r, drops any alpha channel, shrinks it
// to fit within MaxWidth x MaxHeight keeping its aspect ratio and writes it to
// w as a JPEG. Images already within bounds keep their size.
func Derive(w io.Writer, r io.Reader, opts DeriveOptions) error {
	src, err := imaging.Decode(r)
	if err != nil {
		return &DecodeError{Err: err}
	}

	var thumb image.Image = opaque(src)
	b := src.Bounds()
	if tw, th := fitSize(b.Dx(), b.Dy(), opts.MaxWidth, opts.MaxHeight); tw != b.Dx() || th != b.Dy() {
		thumb = imaging.Resize(thumb, tw, th, imaging.Lanczos)
	}

	if err := imaging.Encode(w, thumb, imaging.JPEG, imaging.JPEGQuality(opts.Quality)); err != nil {
		return fmt.Errorf("could not encode thumbnail: %w", err)
	}

	return nil
}

// fitSize scales w x h down to fit within maxW x maxH, rounding each side to
// the nearest pixel. Sizes already within bounds are returned unchanged.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := min(maxW, max(1, int(math.Round(float64(w)*scale))))
	newH := min(maxH, max(1, int(math.Round(float64(h)*scale))))

	return newW, newH
}

// opaque converts img to NRGBA and discards its alpha channel, keeping the
// color channels as they are.
func opaque(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}

	return dst
}
