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

type EnquiryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnquiryRepo(db *dbpg.DB) *EnquiryRepository {
	return &EnquiryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EnquiryRepository) Insert(ctx context.Context, e *domain.Enquiry) (bool, error) {
	// Дедупликация по (dj, date, booking); повторная запись — no-op
	query := `INSERT INTO enquiries (id, dj_id, date, booking_id, origin_status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (dj_id, date, COALESCE(booking_id, '')) DO NOTHING`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.DJID, e.Date, e.BookingID, e.OriginStatus, e.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert enquiry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("enquiry rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	query := `SELECT id, dj_id, date, booking_id, origin_status, created_at
			  FROM enquiries
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get enquiry: %w", err)
	}

	var e domain.Enquiry
	if err = row.Scan(&e.ID, &e.DJID, &e.Date, &e.BookingID, &e.OriginStatus, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("scan enquiry: %w", err)
	}

	return &e, nil
}

func (r *EnquiryRepository) ListOpen(ctx context.Context, djID string, date time.Time) ([]*domain.Enquiry, error) {
	query := `SELECT id, dj_id, date, booking_id, origin_status, created_at
			  FROM enquiries
			  WHERE dj_id = $1 AND date = $2 AND origin_status = $3
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, djID, date, domain.AvailabilityAvailable)
	if err != nil {
		return nil, fmt.Errorf("list open enquiries: %w", err)
	}
	defer rows.Close()

	var res []*domain.Enquiry
	for rows.Next() {
		var e domain.Enquiry
		if err = rows.Scan(&e.ID, &e.DJID, &e.Date, &e.BookingID, &e.OriginStatus, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
