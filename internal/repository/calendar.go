package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CalendarRepository reads the calendar_entries and bookings tables owned
// by the booking platform. The safeguards engine never writes either.
type CalendarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCalendarRepo(db *dbpg.DB) *CalendarRepository {
	return &CalendarRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CalendarRepository) CurrentStatus(ctx context.Context, djID string, date time.Time) (domain.AvailabilityStatus, error) {
	query := `SELECT status FROM calendar_entries
			  WHERE dj_id = $1 AND date = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, djID, date)
	if err != nil {
		return "", fmt.Errorf("get calendar status: %w", err)
	}

	var status domain.AvailabilityStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Нет записи в календаре — дата считается свободной
			return domain.AvailabilityAvailable, nil
		}
		return "", fmt.Errorf("scan calendar status: %w", err)
	}

	return status, nil
}

func (r *CalendarRepository) UnavailableDays(ctx context.Context, djID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM calendar_entries
			  WHERE dj_id = $1 AND status = $2 AND date >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, djID, domain.AvailabilityUnavailable, since)
	if err != nil {
		return 0, fmt.Errorf("count unavailable days: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *CalendarRepository) CountBookings(ctx context.Context, djID string, source domain.BookingSource, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE dj_id = $1 AND source = $2 AND created_at >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, djID, source, since)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}
