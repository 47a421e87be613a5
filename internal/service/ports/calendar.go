package ports

import (
	"context"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

// CalendarRepo is a read-only view over the calendar and booking tables
// owned by the booking platform. The safeguards engine never writes them.
type CalendarRepo interface {
	CurrentStatus(ctx context.Context, djID string, date time.Time) (domain.AvailabilityStatus, error)
	UnavailableDays(ctx context.Context, djID string, since time.Time) (int, error)
	CountBookings(ctx context.Context, djID string, source domain.BookingSource, since time.Time) (int, error)
}
