package media

import (
	"travel/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks a worker to derive the thumbnail of one record.
type JobArgs struct {
	ImageKind domain.ImageKind `json:"kind" river:"unique"`
	ID        int64            `json:"id" river:"unique"`

	maxAttempts int
}

func (args JobArgs) Kind() string { return "DeriveThumbnailJob" }

// InsertOpts keeps at most one job per record until it completes; a later
// backfill can enqueue the record again once the job is gone or failed.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
