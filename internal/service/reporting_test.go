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

func TestReportingService_Dashboard_CachesResult(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	checkRepo := mocks.NewMockCheckRepo(t)

	svc := NewReportingService(alertRepo, checkRepo, time.Minute)

	recent := []*domain.Alert{{ID: "a1"}}
	stats := domain.AlertStats{Total: 1, BySeverity: map[domain.Severity]int{domain.SeverityHigh: 1}}
	top := []domain.FlaggedDJ{{DJID: "dj1", Name: "Nova", AlertCount: 1, HighCount: 1}}

	alertRepo.EXPECT().ListRecent(mock.Anything, 20).Return(recent, nil).Once()
	alertRepo.EXPECT().Stats(mock.Anything, mock.Anything, mock.Anything).Return(stats, nil).Once()
	alertRepo.EXPECT().TopFlagged(mock.Anything, mock.Anything, mock.Anything, 5).Return(top, nil).Once()
	checkRepo.EXPECT().CountMonitoredDates(mock.Anything).Return(7, nil).Once()
	alertRepo.EXPECT().CountActiveInvestigations(mock.Anything).Return(2, nil).Once()

	first, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, first.MonitoredDates)
	assert.Equal(t, 2, first.ActiveInvestigations)

	// Повторный запрос идёт из кэша, репозитории не трогаются
	second, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestReportingService_GenerateReport(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	checkRepo := mocks.NewMockCheckRepo(t)

	svc := NewReportingService(alertRepo, checkRepo, time.Minute)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	stats := domain.AlertStats{
		Total:      3,
		BySeverity: map[domain.Severity]int{domain.SeverityHigh: 2, domain.SeverityLow: 1},
		ByStatus:   map[domain.AlertStatus]int{domain.AlertStatusOpen: 1, domain.AlertStatusResolved: 2},
	}
	kinds := []domain.KindCount{{Kind: domain.KindPatternViolation, Count: 2}}

	alertRepo.EXPECT().Stats(mock.Anything, start, end).Return(stats, nil)
	alertRepo.EXPECT().TopFlagged(mock.Anything, start, end, 10).Return(nil, nil)
	alertRepo.EXPECT().CountByKind(mock.Anything, start, end).Return(kinds, nil)

	report, err := svc.GenerateReport(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, stats, report.AlertSummary)
	assert.Equal(t, kinds, report.ActivityTypes)
	assert.Equal(t, 2, report.ResolutionStatus[domain.AlertStatusResolved])
}

func TestReportingService_GenerateReport_InvalidRange(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	checkRepo := mocks.NewMockCheckRepo(t)

	svc := NewReportingService(alertRepo, checkRepo, time.Minute)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GenerateReport(context.Background(), start, start)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
