package media

import (
	"bytes"
	"context"
	"errors"
	"path"
	"time"
	"travel/pkg/blob"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"go.uber.org/zap"
)

func (m *media) url(ref string) string {
	return m.options.HostPrefix + ref
}

func (m *media) ImageURL(rec domain.DerivableImage) string {
	ref := rec.ImageRef()
	if ref == "" {
		return ""
	}

	return m.url(ref)
}

func (m *media) ThumbnailURL(ctx context.Context, rec domain.DerivableImage) (string, error) {
	if ref := rec.ThumbnailRef(); ref != "" {
		return m.url(ref), nil
	}
	if rec.ImageRef() == "" {
		return "", nil
	}

	kind := string(rec.ImageKind())
	start := time.Now()
	ref, err := m.deriveAndSave(ctx, rec)
	m.metrics.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		result := resultError
		if errors.Is(err, serrors.ErrUndecodable) {
			result = resultUndecodable
		}
		m.metrics.derivations.WithLabelValues(kind, result).Inc()

		return "", err
	}
	m.metrics.derivations.WithLabelValues(kind, resultOK).Inc()

	logger.Debug(ctx, "derived thumbnail",
		zap.String("kind", kind),
		zap.Int64("id", rec.RecordID()),
		zap.String("thumbnail", ref))

	return m.url(ref), nil
}

// deriveAndSave derives the thumbnail of rec, stores it next to the original
// and persists the reference. It returns the stored thumbnail path.
func (m *media) deriveAndSave(ctx context.Context, rec domain.DerivableImage) (string, error) {
	imageRef := rec.ImageRef()

	src, err := m.blobs.Open(ctx, imageRef)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return "", serrors.Wrap(serrors.ErrNotFound, err, "image of %s %d is missing", rec.ImageKind(), rec.RecordID())
		}

		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not open image of %s %d", rec.ImageKind(), rec.RecordID())
	}
	defer func() { _ = src.Close() }()

	var buf bytes.Buffer
	if err := Derive(&buf, src, DeriveOptions{
		MaxWidth:  m.options.MaxWidth,
		MaxHeight: m.options.MaxHeight,
		Quality:   m.options.Quality,
	}); err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = imageRef
		}

		return "", err
	}

	stored, err := m.blobs.Put(ctx, rec.ImageKind().UploadDir()+path.Base(imageRef), &buf)
	if err != nil {
		if errors.Is(err, blob.ErrInvalidName) {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "no thumbnail name fits image of %s %d", rec.ImageKind(), rec.RecordID())
		}

		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not store thumbnail of %s %d", rec.ImageKind(), rec.RecordID())
	}

	rec.SetThumbnailRef(stored)
	if err := m.storage.SaveThumbnail(ctx, rec); err != nil {
		rec.SetThumbnailRef("")

		return "", storageError(err, "could not save thumbnail of %s %d", rec.ImageKind(), rec.RecordID())
	}

	return stored, nil
}
