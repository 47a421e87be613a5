package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestEscalationService_Flag_RaisesAlert(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova"}
	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(1, nil)
	notifier.EXPECT().SendAdminAlert(mock.Anything, dj, domain.KindAvailabilityChangeAfterEnquiry, domain.SeverityHigh, mock.Anything).Return()

	alert, err := svc.Flag(context.Background(), domain.FlagInput{
		DJID:     "dj1",
		Kind:     domain.KindAvailabilityChangeAfterEnquiry,
		Severity: domain.SeverityHigh,
		Details:  map[string]any{"hours_after_enquiry": 10.0},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, domain.AlertStatusOpen, alert.Status)
	assert.Equal(t, domain.SeverityHigh, alert.Severity)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEscalationService_Flag_DJNotFound(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	djRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrDJNotFound)

	_, err := svc.Flag(context.Background(), domain.FlagInput{
		DJID:     "missing",
		Kind:     domain.KindAvailabilityChangeLogged,
		Severity: domain.SeverityLow,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDJNotFound)
}

func TestEscalationService_Threshold_SuspendsProfile(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova"}

	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(3, nil)
	alertRepo.EXPECT().LatestSuspensionAlert(mock.Anything, "dj1").Return(nil, nil)
	djRepo.EXPECT().Suspend(mock.Anything, "dj1", mock.Anything).Return(true, nil)

	var suspension *domain.Alert
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Run(func(ctx context.Context, a *domain.Alert) {
		suspension = a
	}).Return(nil)

	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)
	notifier.EXPECT().SendImmediateAlert(mock.Anything, dj, domain.KindProfileSuspended, mock.Anything).Return()

	err := svc.CheckSuspensionThreshold(context.Background(), "dj1")

	require.NoError(t, err)
	require.NotNil(t, suspension)
	assert.Equal(t, domain.KindProfileSuspended, suspension.Kind)
	assert.Equal(t, domain.SeverityHigh, suspension.Severity)
	assert.Equal(t, 3, suspension.Details["triggering_count"])

	time.Sleep(50 * time.Millisecond)
}

func TestEscalationService_Threshold_BelowThresholdIsNoop(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(2, nil)

	err := svc.CheckSuspensionThreshold(context.Background(), "dj1")

	require.NoError(t, err)
	djRepo.AssertNotCalled(t, "Suspend", mock.Anything, mock.Anything, mock.Anything)
}

func TestEscalationService_Threshold_UnchangedSetDoesNotRetrigger(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	lastSuspension := &domain.Alert{
		ID:        "s1",
		DJID:      "dj1",
		Kind:      domain.KindProfileSuspended,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}

	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(3, nil).Once()
	alertRepo.EXPECT().LatestSuspensionAlert(mock.Anything, "dj1").Return(lastSuspension, nil)
	// Ничего нового после последней блокировки
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", lastSuspension.CreatedAt).Return(0, nil).Once()

	err := svc.CheckSuspensionThreshold(context.Background(), "dj1")

	require.NoError(t, err)
	djRepo.AssertNotCalled(t, "Suspend", mock.Anything, mock.Anything, mock.Anything)
}

func TestEscalationService_Threshold_FreshAlertRetriggers(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova", Suspended: true}
	lastSuspension := &domain.Alert{
		ID:        "s1",
		DJID:      "dj1",
		Kind:      domain.KindProfileSuspended,
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}

	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(4, nil).Once()
	alertRepo.EXPECT().LatestSuspensionAlert(mock.Anything, "dj1").Return(lastSuspension, nil)
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", lastSuspension.CreatedAt).Return(1, nil).Once()

	// Профиль уже заблокирован, повторный Suspend — no-op
	djRepo.EXPECT().Suspend(mock.Anything, "dj1", mock.Anything).Return(false, nil)
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)
	notifier.EXPECT().SendImmediateAlert(mock.Anything, dj, domain.KindProfileSuspended, mock.Anything).Return()

	err := svc.CheckSuspensionThreshold(context.Background(), "dj1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestEscalationService_BlockCircumventionAttempt(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova"}
	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(1, nil)
	notifier.EXPECT().SendAdminAlert(mock.Anything, dj, domain.KindCircumventionAttemptBlocked, domain.SeverityHigh, mock.Anything).Return()

	alert, err := svc.BlockCircumventionAttempt(
		context.Background(), "dj1",
		map[string]any{"client_email": "client@example.com"},
		"off-platform contact attempt intercepted",
	)

	require.NoError(t, err)
	assert.Equal(t, domain.KindCircumventionAttemptBlocked, alert.Kind)
	assert.Equal(t, domain.SeverityHigh, alert.Severity)
	assert.Equal(t, "client@example.com", alert.Details["client_email"])

	time.Sleep(50 * time.Millisecond)
}

func TestEscalationService_HandleClientContact_DeletedDJ(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	djRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrDJNotFound)

	err := svc.HandleClientContact(context.Background(), domain.ClientContactEvent{
		DJID:        "missing",
		ClientEmail: "client@example.com",
	})

	require.NoError(t, err)
}

func TestEscalationService_HandleExternalBooking(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova"}
	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)

	var raised *domain.Alert
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Run(func(ctx context.Context, a *domain.Alert) {
		raised = a
	}).Return(nil)
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(1, nil)
	notifier.EXPECT().SendAdminAlert(mock.Anything, dj, domain.KindExternalBookingDetected, domain.SeverityHigh, mock.Anything).Return()

	err := svc.HandleExternalBooking(context.Background(), domain.ExternalBookingEvent{
		DJID:     "dj1",
		Evidence: "instagram story with club booking",
	})

	require.NoError(t, err)
	require.NotNil(t, raised)
	assert.Equal(t, "instagram story with club booking", raised.Details["evidence"])

	time.Sleep(50 * time.Millisecond)
}

func TestEscalationService_Flag_SuspensionCheckFailureDoesNotFailFlag(t *testing.T) {
	alertRepo := mocks.NewMockAlertRepo(t)
	djRepo := mocks.NewMockDJRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	log := newTestLogger(t)

	svc := NewEscalationService(alertRepo, djRepo, notifier, 3, 7*24*time.Hour, log)

	dj := &domain.DJ{ID: "dj1", Name: "Nova"}
	djRepo.EXPECT().GetByID(mock.Anything, "dj1").Return(dj, nil)
	alertRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	alertRepo.EXPECT().CountSuspensionQualifying(mock.Anything, "dj1", mock.Anything).Return(0, errors.New("db down"))
	notifier.EXPECT().SendAdminAlert(mock.Anything, dj, domain.KindPatternViolation, domain.SeverityHigh, mock.Anything).Return()

	_, err := svc.Flag(context.Background(), domain.FlagInput{
		DJID:     "dj1",
		Kind:     domain.KindPatternViolation,
		Severity: domain.SeverityHigh,
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}
