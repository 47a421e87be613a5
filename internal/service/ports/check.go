package ports

import (
	"context"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

type CheckRepo interface {
	// Insert stores the delayed check unless an equivalent one is already
	// armed. Returns false on a duplicate.
	Insert(ctx context.Context, c *domain.ScheduledCheck) (bool, error)
	Due(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledCheck, error)
	MarkDone(ctx context.Context, id string) error
	CountMonitoredDates(ctx context.Context) (int, error)
}
