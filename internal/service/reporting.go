package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
)

const (
	dashboardCacheKey    = "dashboard"
	dashboardWindow      = 30 * 24 * time.Hour
	recentAlertsLimit    = 20
	topFlaggedLimit      = 5
	reportViolationLimit = 10
)

// ReportingService is the read-only aggregation side: it never writes the
// alert store.
type ReportingService struct {
	alertRepo ports.AlertRepo
	checkRepo ports.CheckRepo
	cache     *gocache.Cache
}

func NewReportingService(alertRepo ports.AlertRepo, checkRepo ports.CheckRepo, cacheTTL time.Duration) *ReportingService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &ReportingService{
		alertRepo: alertRepo,
		checkRepo: checkRepo,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *ReportingService) Dashboard(ctx context.Context) (*domain.DashboardData, error) {
	if cached, ok := s.cache.Get(dashboardCacheKey); ok {
		return cached.(*domain.DashboardData), nil
	}

	now := time.Now().UTC()
	start := now.Add(-dashboardWindow)

	recent, err := s.alertRepo.ListRecent(ctx, recentAlertsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent alerts: %w", err)
	}

	stats, err := s.alertRepo.Stats(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("alert stats: %w", err)
	}

	top, err := s.alertRepo.TopFlagged(ctx, start, now, topFlaggedLimit)
	if err != nil {
		return nil, fmt.Errorf("top flagged: %w", err)
	}

	monitored, err := s.checkRepo.CountMonitoredDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("monitored dates: %w", err)
	}

	investigations, err := s.alertRepo.CountActiveInvestigations(ctx)
	if err != nil {
		return nil, fmt.Errorf("active investigations: %w", err)
	}

	data := &domain.DashboardData{
		RecentAlerts:         recent,
		AlertStats:           stats,
		TopFlaggedDJs:        top,
		MonitoredDates:       monitored,
		ActiveInvestigations: investigations,
	}
	s.cache.SetDefault(dashboardCacheKey, data)

	return data, nil
}

func (s *ReportingService) GenerateReport(ctx context.Context, start, end time.Time) (*domain.Report, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrValidation)
	}

	summary, err := s.alertRepo.Stats(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("alert summary: %w", err)
	}

	violations, err := s.alertRepo.TopFlagged(ctx, start, end, reportViolationLimit)
	if err != nil {
		return nil, fmt.Errorf("dj violations: %w", err)
	}

	kinds, err := s.alertRepo.CountByKind(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("activity types: %w", err)
	}

	resolution := make(map[domain.AlertStatus]int, len(summary.ByStatus))
	for status, count := range summary.ByStatus {
		resolution[status] = count
	}

	return &domain.Report{
		Start:            start,
		End:              end,
		AlertSummary:     summary,
		DJViolations:     violations,
		ActivityTypes:    kinds,
		ResolutionStatus: resolution,
	}, nil
}
