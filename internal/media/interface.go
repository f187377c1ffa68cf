package media

import (
	"context"
	"travel/pkg/domain"
)

//go:generate mockgen -package mockmedia -source=interface.go -destination=mock/mockmedia.go *
type Media interface {
	// ImageURL returns the public URL of the record's original image, or ""
	// when the record has none.
	ImageURL(rec domain.DerivableImage) string
	// ThumbnailURL returns the public URL of the record's thumbnail, deriving
	// and persisting it first when the record has an image but no thumbnail.
	ThumbnailURL(ctx context.Context, rec domain.DerivableImage) (string, error)
	// Load fetches the record of kind with the given id. A missing record is
	// reported as serrors.ErrNotFound and an unknown kind as serrors.ErrBadRequest.
	Load(ctx context.Context, kind domain.ImageKind, id int64) (domain.DerivableImage, error)
	// Warm loads a record and resolves its thumbnail URL.
	Warm(ctx context.Context, kind domain.ImageKind, id int64) (string, error)
	// Backfill enqueues thumbnail jobs for up to limit records of kind that
	// have an image but no thumbnail. It returns the number of jobs enqueued.
	Backfill(ctx context.Context, kind domain.ImageKind, limit uint) (int, error)
}
