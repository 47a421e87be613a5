package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const reminderDelay = time.Hour

// ReviewService drives the administrator-facing alert lifecycle.
type ReviewService struct {
	alertRepo ports.AlertRepo
	checkRepo ports.CheckRepo
	notifier  ports.AdminNotifier
	tasks     ports.TaskCreator
	logger    logger.Logger
}

func NewReviewService(
	alertRepo ports.AlertRepo,
	checkRepo ports.CheckRepo,
	notifier ports.AdminNotifier,
	tasks ports.TaskCreator,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		alertRepo: alertRepo,
		checkRepo: checkRepo,
		notifier:  notifier,
		tasks:     tasks,
		logger:    logger,
	}
}

// Review applies one transition to an open alert. Transitions on an alert
// that is no longer open fail with domain.ErrAlertAlreadyReviewed.
func (s *ReviewService) Review(ctx context.Context, alertID string, action domain.ReviewAction, reviewerID string, notes *string) (*domain.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}

	var (
		status   domain.AlertStatus
		severity = alert.Severity
	)
	switch action {
	case domain.ReviewActionResolve:
		status = domain.AlertStatusResolved
	case domain.ReviewActionEscalate:
		status = domain.AlertStatusEscalated
		severity = domain.SeverityHigh
	case domain.ReviewActionFalsePositive:
		status = domain.AlertStatusFalsePositive
	case domain.ReviewActionDismiss:
		status = domain.AlertStatusDismissed
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReviewAction, action)
	}

	if err = s.alertRepo.Review(ctx, alertID, status, severity, reviewerID, notes); err != nil {
		return nil, fmt.Errorf("review alert: %w", err)
	}

	s.logger.Info("alert reviewed",
		logger.String("alert_id", alertID),
		logger.String("action", string(action)),
		logger.String("reviewer_id", reviewerID),
	)

	if action == domain.ReviewActionEscalate {
		s.escalate(ctx, alert)
	}

	return s.alertRepo.GetByID(ctx, alertID)
}

// escalate creates the external investigation task and schedules the
// one-hour reminder. Both are best-effort: failure never rolls back the
// review transition itself.
func (s *ReviewService) escalate(ctx context.Context, alert *domain.Alert) {
	summary := fmt.Sprintf("Investigate %s alert for DJ %s", alert.Kind, alert.DJID)
	body := fmt.Sprintf("Alert %s (kind %s) was escalated and needs investigation.", alert.ID, alert.Kind)
	if err := s.tasks.CreateInvestigationTask(ctx, summary, body, "high"); err != nil {
		s.logger.Error("failed to create investigation task",
			logger.String("alert_id", alert.ID),
			logger.String("error", err.Error()),
		)
	}

	now := time.Now().UTC()
	alertID := alert.ID
	reminder := &domain.ScheduledCheck{
		ID:          uuid.New().String(),
		Kind:        domain.CheckEscalationReminder,
		DJID:        alert.DJID,
		AlertID:     &alertID,
		OffsetHours: int(reminderDelay.Hours()),
		DueAt:       now.Add(reminderDelay),
		Status:      domain.CheckStatusPending,
		CreatedAt:   now,
	}
	inserted, err := s.checkRepo.Insert(ctx, reminder)
	if err != nil {
		s.logger.Error("failed to schedule escalation reminder",
			logger.String("alert_id", alert.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	if !inserted {
		// Напоминание по этому алерту уже взведено
		s.logger.Debug("escalation reminder already armed",
			logger.String("alert_id", alert.ID),
		)
	}
}

// ProcessReminder fires the delayed escalation reminder if the alert is
// still awaiting investigation.
func (s *ReviewService) ProcessReminder(ctx context.Context, check *domain.ScheduledCheck) error {
	if check.AlertID == nil {
		return fmt.Errorf("reminder check %s has no alert", check.ID)
	}

	alert, err := s.alertRepo.GetByID(ctx, *check.AlertID)
	if err != nil {
		return fmt.Errorf("get alert: %w", err)
	}
	if alert.Status != domain.AlertStatusEscalated {
		// Алерт уже обработан — напоминание не нужно
		return nil
	}

	s.notifier.SendReviewReminder(ctx, alert)
	return nil
}
