package codesweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/starhealth/internal/metrics"
	"github.com/limbo/starhealth/internal/repository/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	reg := prometheus.NewRegistry()
	s := New(repo, metrics.NewCollector(reg))
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	repo.EXPECT().ClearExpiredCodes(gomock.Any(), now).Return(int64(4), nil)
	assert.Equal(t, int64(4), s.Sweep(context.Background()))

	repo.EXPECT().ClearExpiredCodes(gomock.Any(), now).Return(int64(0), errors.New("repository error"))
	assert.Equal(t, int64(0), s.Sweep(context.Background()))

	assert.Equal(t, float64(4), clearedTotal(t, reg))
}

func clearedTotal(t *testing.T, reg *prometheus.Registry) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "starhealth_expired_codes_cleared_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestStartRunsOnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	reg := prometheus.NewRegistry()
	s := New(repo, metrics.NewCollector(reg))

	done := make(chan struct{})
	repo.EXPECT().ClearExpiredCodes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, now time.Time) (int64, error) {
			select {
			case <-done:
			default:
				close(done)
			}
			return 1, nil
		}).MinTimes(1)

	require.NoError(t, s.Start("@every 1s"))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep was not scheduled")
	}
	require.NoError(t, s.Stop())
	assert.GreaterOrEqual(t, clearedTotal(t, reg), float64(1))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(mocks.NewMockUsersRepositoryI(ctrl), nil)
	assert.Error(t, s.Start("every sometimes"))
}
