package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CheckRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCheckRepo(db *dbpg.DB) *CheckRepository {
	return &CheckRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CheckRepository) Insert(ctx context.Context, c *domain.ScheduledCheck) (bool, error) {
	// Повторное взведение той же (dj, date, offset) пары — no-op
	query := `INSERT INTO scheduled_checks (id, kind, dj_id, date, alert_id, offset_hours, due_at, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (kind, dj_id, COALESCE(date, 'epoch'::timestamptz), COALESCE(alert_id::text, ''), offset_hours) DO NOTHING`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Kind, c.DJID, c.Date, c.AlertID,
		c.OffsetHours, c.DueAt, c.Status, c.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert scheduled check: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *CheckRepository) Due(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledCheck, error) {
	query := `SELECT id, kind, dj_id, date, alert_id, offset_hours, due_at, status, created_at
			  FROM scheduled_checks
			  WHERE status = $1 AND due_at <= $2
			  ORDER BY due_at
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.CheckStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due checks: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScheduledCheck
	for rows.Next() {
		var c domain.ScheduledCheck
		if err = rows.Scan(
			&c.ID, &c.Kind, &c.DJID, &c.Date, &c.AlertID,
			&c.OffsetHours, &c.DueAt, &c.Status, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scheduled check: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CheckRepository) MarkDone(ctx context.Context, id string) error {
	query := `UPDATE scheduled_checks SET status = $2 WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.CheckStatusDone); err != nil {
		return fmt.Errorf("mark check done: %w", err)
	}

	return nil
}

func (r *CheckRepository) CountMonitoredDates(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT (dj_id, date))
			  FROM scheduled_checks
			  WHERE kind = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.CheckAvailabilityFollowup, domain.CheckStatusPending)
	if err != nil {
		return 0, fmt.Errorf("count monitored dates: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}
