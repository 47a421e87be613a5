package ports

import (
	"context"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

type AlertRepo interface {
	Append(ctx context.Context, a *domain.Alert) error
	GetByID(ctx context.Context, id string) (*domain.Alert, error)
	// Review applies a review transition with an optimistic must-be-open
	// precondition. Returns domain.ErrAlertAlreadyReviewed when the alert
	// exists but is no longer open.
	Review(ctx context.Context, id string, status domain.AlertStatus, severity domain.Severity, reviewerID string, notes *string) error
	CountRecent(ctx context.Context, djID string, severities []domain.Severity, since time.Time) (int, error)
	// CountSuspensionQualifying counts high-severity alerts for the DJ
	// created at or after since, excluding profile_suspended alerts.
	CountSuspensionQualifying(ctx context.Context, djID string, since time.Time) (int, error)
	// LatestSuspensionAlert returns (nil, nil) when the DJ has never been
	// suspended.
	LatestSuspensionAlert(ctx context.Context, djID string) (*domain.Alert, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Alert, error)
	Stats(ctx context.Context, start, end time.Time) (domain.AlertStats, error)
	TopFlagged(ctx context.Context, start, end time.Time, limit int) ([]domain.FlaggedDJ, error)
	CountByKind(ctx context.Context, start, end time.Time) ([]domain.KindCount, error)
	CountActiveInvestigations(ctx context.Context) (int, error)
	PurgeLow(ctx context.Context, before time.Time) (int64, error)
}
