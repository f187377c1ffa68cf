package worker

import (
	"context"
	"errors"
	"fmt"
	"time"
	"travel/internal/media"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// unavailableSnooze is how long a job waits when a dependency is unavailable.
// Snoozing does not consume an attempt.
const unavailableSnooze = 30 * time.Second

// ThumbnailWorker derives the thumbnail of one record per job.
//
// Errors that cannot change on retry (missing record or original, bad kind,
// undecodable bytes) cancel the job. Unavailable dependencies snooze it and
// everything else is returned so River retries with backoff.
type ThumbnailWorker struct {
	river.WorkerDefaults[media.JobArgs]

	media   media.Media
	timeout time.Duration
}

// NewThumbnailWorker constructs a ThumbnailWorker. A zero timeout keeps
// River's default job timeout.
func NewThumbnailWorker(media media.Media, timeout time.Duration) *ThumbnailWorker {
	return &ThumbnailWorker{
		media:   media,
		timeout: timeout,
	}
}

func (w *ThumbnailWorker) Timeout(*river.Job[media.JobArgs]) time.Duration {
	return w.timeout
}

func (w *ThumbnailWorker) Work(ctx context.Context, job *river.Job[media.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("kind", string(job.Args.ImageKind)),
		zap.Int64("recordID", job.Args.ID))

	url, err := w.media.Warm(ctx, job.Args.ImageKind, job.Args.ID)
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrNotFound),
			errors.Is(err, serrors.ErrBadRequest),
			errors.Is(err, serrors.ErrUndecodable):
			logger.Warn(ctx, "giving up on thumbnail", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrUnavailable):
			logger.Warn(ctx, "dependency unavailable, snoozing thumbnail job", zap.Error(err))

			return river.JobSnooze(unavailableSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error deriving thumbnail", zap.Error(err))

		return fmt.Errorf("could not derive thumbnail: %w", err)
	}

	logger.Info(ctx, "thumbnail ready", zap.String("url", url))

	return nil
}
