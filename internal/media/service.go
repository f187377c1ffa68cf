package media

import (
	"context"
	"errors"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"go.uber.org/zap"
)

// storageError maps a storage failure to its serrors kind, keeping err as the
// cause.
func storageError(err error, msgFmt string, args ...any) error {
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		return serrors.Wrap(serrors.ErrNotFound, err, msgFmt, args...)
	case errors.Is(err, storage.ErrUnavailable):
		return serrors.Wrap(serrors.ErrUnavailable, err, msgFmt, args...)
	default:
		return fmt.Errorf("%s: %w", fmt.Sprintf(msgFmt, args...), err)
	}
}

func (m *media) Load(ctx context.Context, kind domain.ImageKind, id int64) (domain.DerivableImage, error) {
	switch kind {
	case domain.ImageKindHotel:
		hotel, err := m.storage.HotelByID(ctx, domain.HotelID(id))
		if err != nil {
			return nil, storageError(err, "could not get hotel %d", id)
		}
		if hotel == nil {
			return nil, serrors.With(serrors.ErrNotFound, "hotel %d not found", id)
		}

		return hotel, nil
	case domain.ImageKindStay:
		stay, err := m.storage.StayByID(ctx, domain.StayID(id))
		if err != nil {
			return nil, storageError(err, "could not get stay %d", id)
		}
		if stay == nil {
			return nil, serrors.With(serrors.ErrNotFound, "stay %d not found", id)
		}

		return stay, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown image kind %q", kind)
	}
}

func (m *media) Warm(ctx context.Context, kind domain.ImageKind, id int64) (string, error) {
	rec, err := m.Load(ctx, kind, id)
	if err != nil {
		return "", err
	}

	url, err := m.ThumbnailURL(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("could not resolve thumbnail of %s %d: %w", kind, id, err)
	}

	return url, nil
}

func (m *media) Backfill(ctx context.Context, kind domain.ImageKind, limit uint) (int, error) {
	if !kind.Valid() {
		return 0, serrors.With(serrors.ErrBadRequest, "unknown image kind %q", kind)
	}

	recs, err := m.storage.MissingThumbnails(ctx, kind, limit)
	if err != nil {
		return 0, storageError(err, "could not list %s records missing thumbnails", kind)
	}

	enqueued := 0
	for _, rec := range recs {
		added, err := m.storage.AddJob(ctx, JobArgs{
			ImageKind:   rec.Kind,
			ID:          rec.ID,
			maxAttempts: m.options.MaxAttempts,
		}, nil)
		if err != nil {
			return enqueued, fmt.Errorf("could not add thumbnail job for %s %d: %w", rec.Kind, rec.ID, err)
		}
		if added {
			enqueued++
		}
	}

	logger.Info(ctx, "thumbnail backfill enqueued",
		zap.String("kind", string(kind)),
		zap.Int("candidates", len(recs)),
		zap.Int("enqueued", enqueued))

	return enqueued, nil
}
