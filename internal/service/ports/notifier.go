package ports

import (
	"context"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

// AdminNotifier delivers alert notifications to administrators. Calls are
// fire-and-forget: implementations log failures and never return them.
type AdminNotifier interface {
	SendAdminAlert(ctx context.Context, dj *domain.DJ, kind domain.AlertKind, severity domain.Severity, details map[string]any)
	SendImmediateAlert(ctx context.Context, dj *domain.DJ, kind domain.AlertKind, reason string)
	SendReviewReminder(ctx context.Context, alert *domain.Alert)
}

type TaskCreator interface {
	CreateInvestigationTask(ctx context.Context, summary, body, priority string) error
}

// SignalChecker inspects externally linked calendars and social profiles
// for a DJ on a given date. Best-effort; a true result means an
// administrator should take a manual look.
type SignalChecker interface {
	CheckDate(ctx context.Context, dj *domain.DJ, date time.Time) (bool, string, error)
}
