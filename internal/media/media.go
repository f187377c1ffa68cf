// Package media resolves public URLs of record images and lazily derives
// thumbnails from the originals.
package media

import (
	"travel/internal/config"
	"travel/pkg/blob"
	"travel/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
)

// Default thumbnail geometry and encoding.
const (
	DefaultMaxWidth  = 300
	DefaultMaxHeight = 200
	DefaultQuality   = 85
)

// Options configure URL building and thumbnail derivation.
type Options struct {
	// HostPrefix is prepended to stored paths to build public URLs, e.g.
	// "http://127.0.0.1:8000/media/".
	HostPrefix string
	// MaxWidth and MaxHeight bound the thumbnail size in pixels.
	MaxWidth  int
	MaxHeight int
	// Quality is the JPEG quality of thumbnails, 1 to 100.
	Quality int
	// MaxAttempts is the retry budget of thumbnail jobs enqueued by Backfill.
	MaxAttempts int
	// Registerer receives the media metrics. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HostPrefix:  cfg.Media.HostPrefix,
		MaxWidth:    cfg.Media.ThumbnailMaxWidth,
		MaxHeight:   cfg.Media.ThumbnailMaxHeight,
		Quality:     cfg.Media.ThumbnailQuality,
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	if o.Registerer == nil {
		o.Registerer = prometheus.DefaultRegisterer
	}

	return o
}

type media struct {
	options Options
	storage storage.MediaStorage
	blobs   blob.Store
	metrics *collectors
}

// New creates a Media backed by the given record storage and blob store.
func New(storage storage.MediaStorage, blobs blob.Store, options Options) Media {
	options = options.withDefaults()

	return &media{
		options: options,
		storage: storage,
		blobs:   blobs,
		metrics: newCollectors(options.Registerer),
	}
}
