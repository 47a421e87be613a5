package service

import (
	"context"
	"testing"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type detectorTestMocks struct {
	alertRepo    *mocks.MockAlertRepo
	calendarRepo *mocks.MockCalendarRepo
	djRepo       *mocks.MockDJRepo
	flagger      *mocks.MockFlagger
}

func newDetectors(t *testing.T) (*PatternDetectors, detectorTestMocks) {
	t.Helper()
	m := detectorTestMocks{
		alertRepo:    mocks.NewMockAlertRepo(t),
		calendarRepo: mocks.NewMockCalendarRepo(t),
		djRepo:       mocks.NewMockDJRepo(t),
		flagger:      mocks.NewMockFlagger(t),
	}
	svc := NewPatternDetectors(
		m.alertRepo, m.calendarRepo, m.djRepo, m.flagger,
		DetectorConfig{}, newTestLogger(t),
	)
	return svc, m
}

func TestPatternDetectors_PatternViolation(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}}, nil)
	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", []domain.Severity{domain.SeverityHigh, domain.SeverityMedium}, mock.Anything).Return(3, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(0, nil)

	var flagged []domain.FlagInput
	captureFlags(m.flagger, &flagged)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, domain.KindPatternViolation, flagged[0].Kind)
	assert.Equal(t, domain.SeverityHigh, flagged[0].Severity)
	assert.Equal(t, 3, flagged[0].Details["violation_count"])
}

func TestPatternDetectors_BelowThresholdsNoFlags(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}}, nil)
	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", mock.Anything, mock.Anything).Return(2, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(5, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(3, nil)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	m.flagger.AssertNotCalled(t, "Flag", mock.Anything, mock.Anything)
}

func TestPatternDetectors_SuspiciousBookingRatio(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}}, nil)
	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", mock.Anything, mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(20, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceAgency, mock.Anything).Return(2, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(0, nil)

	var flagged []domain.FlagInput
	captureFlags(m.flagger, &flagged)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, domain.KindSuspiciousBookingRatio, flagged[0].Kind)
	assert.Equal(t, domain.SeverityMedium, flagged[0].Severity)
	assert.Equal(t, 10.0, flagged[0].Details["ratio"])
}

func TestPatternDetectors_RatioWithZeroAgencyBookings(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}}, nil)
	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", mock.Anything, mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(12, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceAgency, mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(0, nil)

	var flagged []domain.FlagInput
	captureFlags(m.flagger, &flagged)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, 12.0, flagged[0].Details["ratio"])
}

func TestPatternDetectors_HighDirectEnquiryRate(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}}, nil)
	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", mock.Anything, mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(5, nil)

	var flagged []domain.FlagInput
	captureFlags(m.flagger, &flagged)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, domain.KindHighDirectEnquiryRate, flagged[0].Kind)
	assert.Equal(t, 5, flagged[0].Details["direct_bookings"])
}

func TestPatternDetectors_FailingDJDoesNotStopOthers(t *testing.T) {
	svc, m := newDetectors(t)

	m.djRepo.EXPECT().List(mock.Anything).Return([]*domain.DJ{{ID: "dj1"}, {ID: "dj2"}}, nil)

	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj1", mock.Anything, mock.Anything).Return(0, assert.AnError)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj1", mock.Anything).Return(0, assert.AnError)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj1", domain.BookingSourceDirect, mock.Anything).Return(0, assert.AnError)

	m.alertRepo.EXPECT().CountRecent(mock.Anything, "dj2", mock.Anything, mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().UnavailableDays(mock.Anything, "dj2", mock.Anything).Return(0, nil)
	m.calendarRepo.EXPECT().CountBookings(mock.Anything, "dj2", domain.BookingSourceDirect, mock.Anything).Return(0, nil)

	err := svc.RunDaily(context.Background())

	require.NoError(t, err)
	m.flagger.AssertNotCalled(t, "Flag", mock.Anything, mock.Anything)
}

func TestDetectorConfig_Defaults(t *testing.T) {
	var cfg DetectorConfig
	cfg.applyDefaults()

	assert.Equal(t, 30*24*time.Hour, cfg.PatternWindow)
	assert.Equal(t, 3, cfg.PatternThreshold)
	assert.Equal(t, 90*24*time.Hour, cfg.RatioWindow)
	assert.Equal(t, 10, cfg.RatioMinUnavailable)
	assert.Equal(t, 5.0, cfg.RatioLimit)
	assert.Equal(t, 30*24*time.Hour, cfg.DirectWindow)
	assert.Equal(t, 3, cfg.DirectThreshold)
}
