package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type DJRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDJRepo(db *dbpg.DB) *DJRepository {
	return &DJRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const djColumns = `id, name, email, phone, social_links, suspended, suspended_at, suspend_reason, created_at`

func (r *DJRepository) GetByID(ctx context.Context, id string) (*domain.DJ, error) {
	query := `SELECT ` + djColumns + `
			  FROM djs
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get dj: %w", err)
	}

	var d domain.DJ
	if err = row.Scan(
		&d.ID, &d.Name, &d.Email, &d.Phone, pq.Array(&d.SocialLinks),
		&d.Suspended, &d.SuspendedAt, &d.SuspendReason, &d.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDJNotFound
		}
		return nil, fmt.Errorf("scan dj: %w", err)
	}

	return &d, nil
}

func (r *DJRepository) List(ctx context.Context) ([]*domain.DJ, error) {
	query := `SELECT ` + djColumns + `
			  FROM djs
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list djs: %w", err)
	}
	defer rows.Close()

	var res []*domain.DJ
	for rows.Next() {
		var d domain.DJ
		if err = rows.Scan(
			&d.ID, &d.Name, &d.Email, &d.Phone, pq.Array(&d.SocialLinks),
			&d.Suspended, &d.SuspendedAt, &d.SuspendReason, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dj: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *DJRepository) Suspend(ctx context.Context, id, reason string) (bool, error) {
	query := `UPDATE djs
			  SET suspended = TRUE, suspended_at = now(), suspend_reason = $2
			  WHERE id = $1 AND NOT suspended`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, reason)
	if err != nil {
		return false, fmt.Errorf("suspend dj: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("suspend rows affected: %w", err)
	}
	if rows == 0 {
		// Профиль уже заблокирован либо DJ не существует
		var suspended bool
		checkQuery := `SELECT suspended FROM djs WHERE id = $1`
		if scanErr := r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&suspended); scanErr != nil {
			return false, domain.ErrDJNotFound
		}
		return false, nil
	}

	return true, nil
}

func (r *DJRepository) Reactivate(ctx context.Context, id string) error {
	query := `UPDATE djs
			  SET suspended = FALSE, suspended_at = NULL, suspend_reason = NULL
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("reactivate dj: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reactivate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrDJNotFound
	}

	return nil
}
