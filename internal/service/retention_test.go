package service

import (
	"context"
	"testing"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetentionService_Cleanup_PurgesOldLowAlerts(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	log := newTestLogger(t)

	svc := NewRetentionService(alertRepo, 6*30*24*time.Hour, log)

	var cutoff time.Time
	alertRepo.EXPECT().PurgeLow(mock.Anything, mock.Anything).Run(func(ctx context.Context, before time.Time) {
		cutoff = before
	}).Return(int64(4), nil)

	purged, err := svc.Cleanup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)
	assert.WithinDuration(t, time.Now().UTC().Add(-6*30*24*time.Hour), cutoff, time.Minute)
}

func TestRetentionService_Cleanup_Failure(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	log := newTestLogger(t)

	svc := NewRetentionService(alertRepo, 0, log)

	alertRepo.EXPECT().PurgeLow(mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	_, err := svc.Cleanup(context.Background())

	require.Error(t, err)
}
