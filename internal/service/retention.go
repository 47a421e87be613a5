package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultLowRetention = 6 * 30 * 24 * time.Hour

// RetentionService is best-effort housekeeping: only low-severity alerts
// are ever purged. Medium and high alerts are kept indefinitely.
type RetentionService struct {
	alertRepo ports.AlertRepo
	lowAge    time.Duration
	logger    logger.Logger
}

func NewRetentionService(alertRepo ports.AlertRepo, lowAge time.Duration, logger logger.Logger) *RetentionService {
	if lowAge <= 0 {
		lowAge = defaultLowRetention
	}
	return &RetentionService{
		alertRepo: alertRepo,
		lowAge:    lowAge,
		logger:    logger,
	}
}

func (s *RetentionService) Cleanup(ctx context.Context) (int64, error) {
	before := time.Now().UTC().Add(-s.lowAge)

	purged, err := s.alertRepo.PurgeLow(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge low alerts: %w", err)
	}

	if purged > 0 {
		s.logger.Info("old low-severity alerts purged",
			logger.Int64("count", purged),
		)
	}

	return purged, nil
}
