package storage

//go:generate mockgen -package mockstorage -source=image.go -destination=mock/mockimage.go *

import (
	"context"
	"travel/pkg/domain"
)

// ImageStorage loads and updates records carrying derivable images.
type ImageStorage interface {
	// HotelByID returns nil when the hotel does not exist.
	HotelByID(ctx context.Context, id domain.HotelID) (*domain.Hotel, error)
	// StayByID returns nil when the stay does not exist.
	StayByID(ctx context.Context, id domain.StayID) (*domain.Stay, error)
	// SaveThumbnail persists the record's current thumbnail reference. An
	// empty reference clears the stored thumbnail.
	SaveThumbnail(ctx context.Context, rec domain.DerivableImage) error
	// MissingThumbnails lists up to limit records of kind that have an image
	// but no thumbnail, ordered by ID.
	MissingThumbnails(ctx context.Context, kind domain.ImageKind, limit uint) ([]domain.ImageRecord, error)
}

// MediaStorage is the storage used by the media service: image records plus
// job enqueueing for thumbnail backfills.
type MediaStorage interface {
	ImageStorage
	JobStorage
}
