package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultSuspensionThreshold = 3
	defaultSuspensionWindow    = 7 * 24 * time.Hour
)

// EscalationService owns the single alert write path. Every detector goes
// through Flag, so every new alert is persisted, reported to the admins
// and counted against the suspension threshold.
type EscalationService struct {
	alertRepo ports.AlertRepo
	djRepo    ports.DJRepo
	notifier  ports.AdminNotifier
	threshold int
	window    time.Duration
	logger    logger.Logger
}

func NewEscalationService(
	alertRepo ports.AlertRepo,
	djRepo ports.DJRepo,
	notifier ports.AdminNotifier,
	threshold int,
	window time.Duration,
	logger logger.Logger,
) *EscalationService {
	if threshold <= 0 {
		threshold = defaultSuspensionThreshold
	}
	if window <= 0 {
		window = defaultSuspensionWindow
	}
	return &EscalationService{
		alertRepo: alertRepo,
		djRepo:    djRepo,
		notifier:  notifier,
		threshold: threshold,
		window:    window,
		logger:    logger,
	}
}

func (s *EscalationService) Flag(ctx context.Context, in domain.FlagInput) (*domain.Alert, error) {
	dj, err := s.djRepo.GetByID(ctx, in.DJID)
	if err != nil {
		return nil, fmt.Errorf("check dj: %w", err)
	}

	alert := &domain.Alert{
		ID:        uuid.New().String(),
		DJID:      in.DJID,
		Date:      in.Date,
		BookingID: in.BookingID,
		Kind:      in.Kind,
		Severity:  in.Severity,
		Details:   in.Details,
		Status:    domain.AlertStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.alertRepo.Append(ctx, alert); err != nil {
		return nil, fmt.Errorf("append alert: %w", err)
	}

	s.logger.Info("alert raised",
		logger.String("alert_id", alert.ID),
		logger.String("dj_id", alert.DJID),
		logger.String("kind", string(alert.Kind)),
		logger.String("severity", string(alert.Severity)),
	)

	// Доставка уведомления не должна влиять на запись алерта
	go s.notifier.SendAdminAlert(context.WithoutCancel(ctx), dj, alert.Kind, alert.Severity, alert.Details)

	if err = s.CheckSuspensionThreshold(ctx, in.DJID); err != nil {
		s.logger.Error("suspension check failed",
			logger.String("dj_id", in.DJID),
			logger.String("error", err.Error()),
		)
	}

	return alert, nil
}

// CheckSuspensionThreshold suspends the DJ's public profile once the
// trailing window holds enough qualifying high-severity alerts. Re-runs
// over an unchanged alert set are no-ops.
func (s *EscalationService) CheckSuspensionThreshold(ctx context.Context, djID string) error {
	windowStart := time.Now().UTC().Add(-s.window)

	count, err := s.alertRepo.CountSuspensionQualifying(ctx, djID, windowStart)
	if err != nil {
		return fmt.Errorf("count qualifying alerts: %w", err)
	}
	if count < s.threshold {
		return nil
	}

	last, err := s.alertRepo.LatestSuspensionAlert(ctx, djID)
	if err != nil {
		return fmt.Errorf("latest suspension alert: %w", err)
	}
	if last != nil {
		since := windowStart
		if last.CreatedAt.After(since) {
			since = last.CreatedAt
		}
		fresh, err := s.alertRepo.CountSuspensionQualifying(ctx, djID, since)
		if err != nil {
			return fmt.Errorf("count fresh alerts: %w", err)
		}
		if fresh == 0 {
			// Набор алертов в окне не изменился с прошлой блокировки
			return nil
		}
	}

	reason := fmt.Sprintf("%d high-severity alerts within %s", count, s.window)
	if _, err = s.djRepo.Suspend(ctx, djID, reason); err != nil {
		return fmt.Errorf("suspend profile: %w", err)
	}

	suspAlert := &domain.Alert{
		ID:       uuid.New().String(),
		DJID:     djID,
		Kind:     domain.KindProfileSuspended,
		Severity: domain.SeverityHigh,
		Details: map[string]any{
			"triggering_count": count,
			"window_hours":     s.window.Hours(),
		},
		Status:    domain.AlertStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.alertRepo.Append(ctx, suspAlert); err != nil {
		return fmt.Errorf("append suspension alert: %w", err)
	}

	s.logger.Warn("dj profile suspended",
		logger.String("dj_id", djID),
		logger.Int("triggering_count", count),
	)

	dj, err := s.djRepo.GetByID(ctx, djID)
	if err != nil {
		s.logger.Error("failed to get dj for suspension notification",
			logger.String("dj_id", djID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.SendImmediateAlert(context.WithoutCancel(ctx), dj, domain.KindProfileSuspended, reason)

	return nil
}

// BlockCircumventionAttempt is the externally invoked short-circuit for an
// intercepted off-platform contact.
func (s *EscalationService) BlockCircumventionAttempt(ctx context.Context, djID string, clientData map[string]any, reason string) (*domain.Alert, error) {
	details := map[string]any{"reason": reason}
	for k, v := range clientData {
		details[k] = v
	}

	return s.Flag(ctx, domain.FlagInput{
		DJID:     djID,
		Kind:     domain.KindCircumventionAttemptBlocked,
		Severity: domain.SeverityHigh,
		Details:  details,
	})
}

// HandleClientContact subscribes the escalation engine to intercepted
// contact events from the communication collaborator.
func (s *EscalationService) HandleClientContact(ctx context.Context, ev domain.ClientContactEvent) error {
	clientData := map[string]any{"client_email": ev.ClientEmail}
	if ev.BookingID != nil {
		clientData["booking_id"] = *ev.BookingID
	}

	_, err := s.BlockCircumventionAttempt(ctx, ev.DJID, clientData, "off-platform contact attempt intercepted")
	if errors.Is(err, domain.ErrDJNotFound) {
		return nil
	}
	return err
}

// HandleExternalBooking subscribes the escalation engine to evidence of
// bookings taken outside the agency.
func (s *EscalationService) HandleExternalBooking(ctx context.Context, ev domain.ExternalBookingEvent) error {
	_, err := s.Flag(ctx, domain.FlagInput{
		DJID:     ev.DJID,
		Kind:     domain.KindExternalBookingDetected,
		Severity: domain.SeverityHigh,
		Details:  map[string]any{"evidence": ev.Evidence},
	})
	if errors.Is(err, domain.ErrDJNotFound) {
		return nil
	}
	return err
}
