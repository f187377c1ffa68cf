package worker_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"travel/internal/media"
	"travel/internal/worker"
	"travel/pkg/blob"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	mockmedia "travel/internal/media/mock"
	mockstorage "travel/pkg/storage/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup("development", "")
	m.Run()
}

func makeJob(id int64, kind domain.ImageKind, recordID int64) *river.Job[media.JobArgs] {
	return &river.Job[media.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   media.JobArgs{ImageKind: kind, ID: recordID},
	}
}

func TestThumbnailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockmedia.NewMockMedia(ctrl)
	w := worker.NewThumbnailWorker(m, 0)

	m.EXPECT().Warm(gomock.Any(), domain.ImageKindHotel, int64(3)).
		Return("http://127.0.0.1:8000/media/hotel_images/a.jpg", nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, domain.ImageKindHotel, 3)))
}

func TestThumbnailWorker_Work_Cancels(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "stay 9 not found")},
		{"bad request", serrors.With(serrors.ErrBadRequest, "unknown image kind")},
		{"undecodable", &media.DecodeError{Path: "stay_images/x.jpg", Err: errors.New("unexpected EOF")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mockmedia.NewMockMedia(ctrl)
			w := worker.NewThumbnailWorker(m, 0)

			m.EXPECT().Warm(gomock.Any(), domain.ImageKindStay, int64(9)).Return("", tt.err)

			err := w.Work(context.Background(), makeJob(2, domain.ImageKindStay, 9))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
		})
	}
}

func TestThumbnailWorker_Work_UnavailableSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockmedia.NewMockMedia(ctrl)
	w := worker.NewThumbnailWorker(m, 0)

	m.EXPECT().Warm(gomock.Any(), domain.ImageKindHotel, int64(4)).
		Return("", serrors.Wrap(serrors.ErrUnavailable, errors.New("dial tcp"), "database down"))

	err := w.Work(context.Background(), makeJob(3, domain.ImageKindHotel, 4))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 30*time.Second, snoozeErr.Duration)
}

func TestThumbnailWorker_Work_OtherErrorsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockmedia.NewMockMedia(ctrl)
	w := worker.NewThumbnailWorker(m, 0)

	boom := errors.New("connection reset")
	m.EXPECT().Warm(gomock.Any(), domain.ImageKindHotel, int64(5)).Return("", boom)

	err := w.Work(context.Background(), makeJob(4, domain.ImageKindHotel, 5))
	require.ErrorIs(t, err, boom)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestThumbnailWorker_Timeout(t *testing.T) {
	w := worker.NewThumbnailWorker(nil, time.Minute)
	require.Equal(t, time.Minute, w.Timeout(makeJob(1, domain.ImageKindHotel, 1)))
}

func TestThumbnailWorker_Work_LostDatabaseSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockMediaStorage(ctrl)
	m := media.New(strg, blob.NewMemFS(), media.Options{
		HostPrefix: "http://127.0.0.1:8000/media/",
		Registerer: prometheus.NewRegistry(),
	})
	w := worker.NewThumbnailWorker(m, 0)

	strg.EXPECT().StayByID(gomock.Any(), domain.StayID(6)).
		Return(nil, fmt.Errorf("could not fetch stay by id: %w", storage.ErrUnavailable))

	err := w.Work(context.Background(), makeJob(5, domain.ImageKindStay, 6))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}
