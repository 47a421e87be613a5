package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/logger"
)

type checkRunner interface {
	RunDue(ctx context.Context, now time.Time) (int, error)
}

type detectorRunner interface {
	RunDaily(ctx context.Context) error
}

type retentionRunner interface {
	Cleanup(ctx context.Context) (int64, error)
}

// Scheduler drives the engine's time-triggered work: a ticker loop drains
// due delayed checks, and cron entries run the daily pattern detectors and
// the retention cleanup. Jobs are independent, with no ordering guarantee
// between them.
type Scheduler struct {
	checks        checkRunner
	detectors     detectorRunner
	retention     retentionRunner
	interval      time.Duration
	detectorSpec  string
	retentionSpec string
	cron          *cron.Cron
	logger        logger.Logger
}

func New(
	checks checkRunner,
	detectors detectorRunner,
	retention retentionRunner,
	interval time.Duration,
	detectorSpec string,
	retentionSpec string,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checks:        checks,
		detectors:     detectors,
		retention:     retention,
		interval:      interval,
		detectorSpec:  detectorSpec,
		retentionSpec: retentionSpec,
		cron:          cron.New(cron.WithLocation(time.UTC)),
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.detectorSpec, func() { s.runDetectors(ctx) }); err != nil {
		return fmt.Errorf("schedule detectors: %w", err)
	}
	if _, err := s.cron.AddFunc(s.retentionSpec, func() { s.runRetention(ctx) }); err != nil {
		return fmt.Errorf("schedule retention: %w", err)
	}
	s.cron.Start()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.String("detector_schedule", s.detectorSpec),
		logger.String("retention_schedule", s.retentionSpec),
	)

	for {
		select {
		case <-ctx.Done():
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	processed, err := s.checks.RunDue(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to run due checks",
			logger.String("error", err.Error()),
		)
		return
	}

	if processed > 0 {
		s.logger.Info("delayed checks processed",
			logger.Int("count", processed),
		)
	}
}

func (s *Scheduler) runDetectors(ctx context.Context) {
	if err := s.detectors.RunDaily(ctx); err != nil {
		s.logger.Error("pattern detector run failed",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) runRetention(ctx context.Context) {
	// Очистка best-effort: ошибка логируется и не фатальна
	if _, err := s.retention.Cleanup(ctx); err != nil {
		s.logger.Error("retention cleanup failed",
			logger.String("error", err.Error()),
		)
	}
}
