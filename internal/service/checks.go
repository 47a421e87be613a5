package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const dueChecksBatchSize = 100

type followupProcessor interface {
	ProcessFollowup(ctx context.Context, check *domain.ScheduledCheck) error
}

type reminderProcessor interface {
	ProcessReminder(ctx context.Context, check *domain.ScheduledCheck) error
}

// CheckRunner drains due scheduled checks and dispatches them by kind.
// Each check is processed at most once per drain and marked done even on
// failure: delayed checks are additive audit work, not a correctness
// property worth a retry loop.
type CheckRunner struct {
	checkRepo ports.CheckRepo
	monitor   followupProcessor
	review    reminderProcessor
	logger    logger.Logger
}

func NewCheckRunner(
	checkRepo ports.CheckRepo,
	monitor followupProcessor,
	review reminderProcessor,
	logger logger.Logger,
) *CheckRunner {
	return &CheckRunner{
		checkRepo: checkRepo,
		monitor:   monitor,
		review:    review,
		logger:    logger,
	}
}

func (r *CheckRunner) RunDue(ctx context.Context, now time.Time) (int, error) {
	checks, err := r.checkRepo.Due(ctx, now, dueChecksBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list due checks: %w", err)
	}

	for _, check := range checks {
		if err := r.process(ctx, check); err != nil {
			r.logger.Error("scheduled check failed",
				logger.String("check_id", check.ID),
				logger.String("kind", string(check.Kind)),
				logger.String("dj_id", check.DJID),
				logger.String("error", err.Error()),
			)
		}
		if err := r.checkRepo.MarkDone(ctx, check.ID); err != nil {
			r.logger.Error("failed to mark check done",
				logger.String("check_id", check.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return len(checks), nil
}

func (r *CheckRunner) process(ctx context.Context, check *domain.ScheduledCheck) error {
	switch check.Kind {
	case domain.CheckAvailabilityFollowup:
		return r.monitor.ProcessFollowup(ctx, check)
	case domain.CheckEscalationReminder:
		return r.review.ProcessReminder(ctx, check)
	default:
		return fmt.Errorf("unknown check kind %q", check.Kind)
	}
}
