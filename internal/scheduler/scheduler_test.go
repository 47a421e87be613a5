package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func newTestScheduler(t *testing.T, interval time.Duration) (*Scheduler, *mocks.MockCheckRunner) {
	t.Helper()
	checks := mocks.NewMockCheckRunner(t)
	detectors := mocks.NewMockDetectorRunner(t)
	retention := mocks.NewMockRetentionRunner(t)
	log := newTestLogger(t)

	// Батчевые задачи в тик-тестах не должны срабатывать
	s := New(checks, detectors, retention, interval, "0 3 * * *", "30 4 * * *", log)
	return s, checks
}

func TestScheduler_Tick_RunsDueChecks(t *testing.T) {
	s, checks := newTestScheduler(t, 50*time.Millisecond)

	checks.EXPECT().RunDue(mock.Anything, mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.GreaterOrEqual(t, len(checks.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	s, checks := newTestScheduler(t, 50*time.Millisecond)

	checks.EXPECT().RunDue(mock.Anything, mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.GreaterOrEqual(t, len(checks.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s, _ := newTestScheduler(t, time.Second) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		_ = s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	s, checks := newTestScheduler(t, 30*time.Millisecond)

	checks.EXPECT().RunDue(mock.Anything, mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	calls := len(checks.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestScheduler_RejectsInvalidCronSpec(t *testing.T) {
	checks := mocks.NewMockCheckRunner(t)
	detectors := mocks.NewMockDetectorRunner(t)
	retention := mocks.NewMockRetentionRunner(t)
	log := newTestLogger(t)

	s := New(checks, detectors, retention, time.Second, "not a cron spec", "30 4 * * *", log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := s.Start(ctx)

	assert.Error(t, err)
}
