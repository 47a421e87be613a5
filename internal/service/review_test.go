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

type reviewTestMocks struct {
	alertRepo *mocks.MockAlertRepo
	checkRepo *mocks.MockCheckRepo
	notifier  *mocks.MockAdminNotifier
	tasks     *mocks.MockTaskCreator
}

func newReview(t *testing.T) (*ReviewService, reviewTestMocks) {
	t.Helper()
	m := reviewTestMocks{
		alertRepo: mocks.NewMockAlertRepo(t),
		checkRepo: mocks.NewMockCheckRepo(t),
		notifier:  mocks.NewMockAdminNotifier(t),
		tasks:     mocks.NewMockTaskCreator(t),
	}
	svc := NewReviewService(m.alertRepo, m.checkRepo, m.notifier, m.tasks, newTestLogger(t))
	return svc, m
}

func TestReviewService_Review_Resolve(t *testing.T) {
	svc, m := newReview(t)

	open := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}
	resolved := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityMedium, Status: domain.AlertStatusResolved}
	notes := "checked with the dj, legitimate block"

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(open, nil).Once()
	m.alertRepo.EXPECT().Review(mock.Anything, "a1", domain.AlertStatusResolved, domain.SeverityMedium, "admin1", &notes).Return(nil)
	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(resolved, nil).Once()

	alert, err := svc.Review(context.Background(), "a1", domain.ReviewActionResolve, "admin1", &notes)

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusResolved, alert.Status)
	m.tasks.AssertNotCalled(t, "CreateInvestigationTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_Review_EscalateUpgradesSeverity(t *testing.T) {
	svc, m := newReview(t)

	open := &domain.Alert{ID: "a1", DJID: "dj1", Kind: domain.KindPatternViolation, Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}
	escalated := &domain.Alert{ID: "a1", DJID: "dj1", Kind: domain.KindPatternViolation, Severity: domain.SeverityHigh, Status: domain.AlertStatusEscalated}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(open, nil).Once()
	m.alertRepo.EXPECT().Review(mock.Anything, "a1", domain.AlertStatusEscalated, domain.SeverityHigh, "admin1", (*string)(nil)).Return(nil)
	m.tasks.EXPECT().CreateInvestigationTask(mock.Anything, mock.Anything, mock.Anything, "high").Return(nil)

	var reminder *domain.ScheduledCheck
	m.checkRepo.EXPECT().Insert(mock.Anything, mock.Anything).Run(func(ctx context.Context, c *domain.ScheduledCheck) {
		reminder = c
	}).Return(true, nil)

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(escalated, nil).Once()

	alert, err := svc.Review(context.Background(), "a1", domain.ReviewActionEscalate, "admin1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusEscalated, alert.Status)
	assert.Equal(t, domain.SeverityHigh, alert.Severity)

	require.NotNil(t, reminder)
	assert.Equal(t, domain.CheckEscalationReminder, reminder.Kind)
	require.NotNil(t, reminder.AlertID)
	assert.Equal(t, "a1", *reminder.AlertID)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), reminder.DueAt, time.Minute)
}

func TestReviewService_Review_AlreadyReviewed(t *testing.T) {
	svc, m := newReview(t)

	reviewed := &domain.Alert{ID: "a1", Severity: domain.SeverityLow, Status: domain.AlertStatusResolved}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(reviewed, nil)
	m.alertRepo.EXPECT().Review(mock.Anything, "a1", domain.AlertStatusDismissed, domain.SeverityLow, "admin1", (*string)(nil)).Return(domain.ErrAlertAlreadyReviewed)

	_, err := svc.Review(context.Background(), "a1", domain.ReviewActionDismiss, "admin1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlertAlreadyReviewed)
}

func TestReviewService_Review_UnknownAction(t *testing.T) {
	svc, m := newReview(t)

	open := &domain.Alert{ID: "a1", Status: domain.AlertStatusOpen}
	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(open, nil)

	_, err := svc.Review(context.Background(), "a1", domain.ReviewAction("archive"), "admin1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownReviewAction)
	m.alertRepo.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_Review_TaskFailureDoesNotFailReview(t *testing.T) {
	svc, m := newReview(t)

	open := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}
	escalated := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityHigh, Status: domain.AlertStatusEscalated}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(open, nil).Once()
	m.alertRepo.EXPECT().Review(mock.Anything, "a1", domain.AlertStatusEscalated, domain.SeverityHigh, "admin1", (*string)(nil)).Return(nil)
	m.tasks.EXPECT().CreateInvestigationTask(mock.Anything, mock.Anything, mock.Anything, "high").Return(assert.AnError)
	m.checkRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(true, nil)
	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(escalated, nil).Once()

	alert, err := svc.Review(context.Background(), "a1", domain.ReviewActionEscalate, "admin1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusEscalated, alert.Status)
}

func TestReviewService_Review_EscalatesSecondAlertForSameDJ(t *testing.T) {
	svc, m := newReview(t)

	first := &domain.Alert{ID: "a1", DJID: "dj1", Kind: domain.KindPatternViolation, Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}
	second := &domain.Alert{ID: "a2", DJID: "dj1", Kind: domain.KindDateBecameUnavailable, Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(first, nil)
	m.alertRepo.EXPECT().GetByID(mock.Anything, "a2").Return(second, nil)
	m.alertRepo.EXPECT().Review(mock.Anything, mock.Anything, domain.AlertStatusEscalated, domain.SeverityHigh, "admin1", (*string)(nil)).Return(nil).Twice()
	m.tasks.EXPECT().CreateInvestigationTask(mock.Anything, mock.Anything, mock.Anything, "high").Return(nil).Twice()

	var reminders []*domain.ScheduledCheck
	m.checkRepo.EXPECT().Insert(mock.Anything, mock.Anything).Run(func(ctx context.Context, c *domain.ScheduledCheck) {
		reminders = append(reminders, c)
	}).Return(true, nil).Twice()

	_, err := svc.Review(context.Background(), "a1", domain.ReviewActionEscalate, "admin1", nil)
	require.NoError(t, err)
	_, err = svc.Review(context.Background(), "a2", domain.ReviewActionEscalate, "admin1", nil)
	require.NoError(t, err)

	// Каждый эскалированный алерт получает собственное напоминание
	require.Len(t, reminders, 2)
	require.NotNil(t, reminders[0].AlertID)
	require.NotNil(t, reminders[1].AlertID)
	assert.Equal(t, "a1", *reminders[0].AlertID)
	assert.Equal(t, "a2", *reminders[1].AlertID)
	assert.Equal(t, "dj1", reminders[0].DJID)
	assert.Equal(t, "dj1", reminders[1].DJID)
}

func TestReviewService_Review_ReminderAlreadyArmed(t *testing.T) {
	svc, m := newReview(t)

	open := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityMedium, Status: domain.AlertStatusOpen}
	escalated := &domain.Alert{ID: "a1", DJID: "dj1", Severity: domain.SeverityHigh, Status: domain.AlertStatusEscalated}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(open, nil).Once()
	m.alertRepo.EXPECT().Review(mock.Anything, "a1", domain.AlertStatusEscalated, domain.SeverityHigh, "admin1", (*string)(nil)).Return(nil)
	m.tasks.EXPECT().CreateInvestigationTask(mock.Anything, mock.Anything, mock.Anything, "high").Return(nil)
	m.checkRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(false, nil)
	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(escalated, nil).Once()

	alert, err := svc.Review(context.Background(), "a1", domain.ReviewActionEscalate, "admin1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusEscalated, alert.Status)
}

func TestReviewService_ProcessReminder_SendsWhileEscalated(t *testing.T) {
	svc, m := newReview(t)

	alertID := "a1"
	escalated := &domain.Alert{ID: "a1", Status: domain.AlertStatusEscalated}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(escalated, nil)
	m.notifier.EXPECT().SendReviewReminder(mock.Anything, escalated).Return()

	err := svc.ProcessReminder(context.Background(), &domain.ScheduledCheck{
		ID:      "c1",
		Kind:    domain.CheckEscalationReminder,
		AlertID: &alertID,
	})

	require.NoError(t, err)
}

func TestReviewService_ProcessReminder_SkipsHandledAlert(t *testing.T) {
	svc, m := newReview(t)

	alertID := "a1"
	resolved := &domain.Alert{ID: "a1", Status: domain.AlertStatusResolved}

	m.alertRepo.EXPECT().GetByID(mock.Anything, "a1").Return(resolved, nil)

	err := svc.ProcessReminder(context.Background(), &domain.ScheduledCheck{
		ID:      "c1",
		Kind:    domain.CheckEscalationReminder,
		AlertID: &alertID,
	})

	require.NoError(t, err)
	m.notifier.AssertNotCalled(t, "SendReviewReminder", mock.Anything, mock.Anything)
}
