package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AlertRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAlertRepo(db *dbpg.DB) *AlertRepository {
	return &AlertRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const alertColumns = `id, dj_id, date, booking_id, kind, severity, details, status, reviewer_id, reviewed_at, notes, created_at`

func (r *AlertRepository) Append(ctx context.Context, a *domain.Alert) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}

	query := `INSERT INTO alerts (id, dj_id, date, booking_id, kind, severity, details, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.DJID, a.Date, a.BookingID,
		a.Kind, a.Severity, details, a.Status, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*domain.Alert, error) {
	query := `SELECT ` + alertColumns + `
			  FROM alerts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}

	return scanAlert(row)
}

func (r *AlertRepository) Review(
	ctx context.Context,
	id string,
	status domain.AlertStatus,
	severity domain.Severity,
	reviewerID string,
	notes *string,
) error {
	query := `UPDATE alerts
			  SET status = $2, severity = $3, reviewer_id = $4, reviewed_at = now(), notes = $5
			  WHERE id = $1 AND status = $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, status, severity, reviewerID, notes, domain.AlertStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("review alert: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("review rows affected: %w", err)
	}
	if rows == 0 {
		// Разбираем причину: алерт не найден или уже обработан
		var current string
		checkQuery := `SELECT status FROM alerts WHERE id = $1`
		if scanErr := r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
			return domain.ErrAlertNotFound
		}
		return domain.ErrAlertAlreadyReviewed
	}

	return nil
}

func (r *AlertRepository) CountRecent(ctx context.Context, djID string, severities []domain.Severity, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM alerts
			  WHERE dj_id = $1 AND severity = ANY($2) AND created_at >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, djID, pq.Array(severities), since)
	if err != nil {
		return 0, fmt.Errorf("count recent alerts: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *AlertRepository) CountSuspensionQualifying(ctx context.Context, djID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM alerts
			  WHERE dj_id = $1 AND severity = $2 AND kind <> $3 AND created_at >= $4`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		djID, domain.SeverityHigh, domain.KindProfileSuspended, since,
	)
	if err != nil {
		return 0, fmt.Errorf("count qualifying alerts: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *AlertRepository) LatestSuspensionAlert(ctx context.Context, djID string) (*domain.Alert, error) {
	query := `SELECT ` + alertColumns + `
			  FROM alerts
			  WHERE dj_id = $1 AND kind = $2
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, djID, domain.KindProfileSuspended)
	if err != nil {
		return nil, fmt.Errorf("latest suspension alert: %w", err)
	}

	a, err := scanAlert(row)
	if errors.Is(err, domain.ErrAlertNotFound) {
		return nil, nil
	}
	return a, err
}

func (r *AlertRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + `
			  FROM alerts
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *AlertRepository) Stats(ctx context.Context, start, end time.Time) (domain.AlertStats, error) {
	stats := domain.AlertStats{
		BySeverity: make(map[domain.Severity]int),
		ByStatus:   make(map[domain.AlertStatus]int),
	}

	query := `SELECT severity, status, COUNT(*)
			  FROM alerts
			  WHERE created_at >= $1 AND created_at < $2
			  GROUP BY severity, status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end)
	if err != nil {
		return stats, fmt.Errorf("alert stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			severity domain.Severity
			status   domain.AlertStatus
			count    int
		)
		if err = rows.Scan(&severity, &status, &count); err != nil {
			return stats, fmt.Errorf("scan stats: %w", err)
		}
		stats.Total += count
		stats.BySeverity[severity] += count
		stats.ByStatus[status] += count
	}

	return stats, rows.Err()
}

func (r *AlertRepository) TopFlagged(ctx context.Context, start, end time.Time, limit int) ([]domain.FlaggedDJ, error) {
	query := `SELECT a.dj_id, COALESCE(d.name, a.dj_id),
					 COUNT(*),
					 COUNT(*) FILTER (WHERE a.severity = $4)
			  FROM alerts a
			  LEFT JOIN djs d ON d.id = a.dj_id
			  WHERE a.created_at >= $1 AND a.created_at < $2
			  GROUP BY a.dj_id, d.name
			  ORDER BY COUNT(*) FILTER (WHERE a.severity = $4) DESC, COUNT(*) DESC
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end, limit, domain.SeverityHigh)
	if err != nil {
		return nil, fmt.Errorf("top flagged djs: %w", err)
	}
	defer rows.Close()

	var res []domain.FlaggedDJ
	for rows.Next() {
		var f domain.FlaggedDJ
		if err = rows.Scan(&f.DJID, &f.Name, &f.AlertCount, &f.HighCount); err != nil {
			return nil, fmt.Errorf("scan flagged dj: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func (r *AlertRepository) CountByKind(ctx context.Context, start, end time.Time) ([]domain.KindCount, error) {
	query := `SELECT kind, COUNT(*)
			  FROM alerts
			  WHERE created_at >= $1 AND created_at < $2
			  GROUP BY kind
			  ORDER BY COUNT(*) DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("count by kind: %w", err)
	}
	defer rows.Close()

	var res []domain.KindCount
	for rows.Next() {
		var kc domain.KindCount
		if err = rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("scan kind count: %w", err)
		}
		res = append(res, kc)
	}

	return res, rows.Err()
}

func (r *AlertRepository) CountActiveInvestigations(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM alerts WHERE status = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.AlertStatusEscalated)
	if err != nil {
		return 0, fmt.Errorf("count investigations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *AlertRepository) PurgeLow(ctx context.Context, before time.Time) (int64, error) {
	// Только low-severity: medium и high стандартная очистка не трогает
	query := `DELETE FROM alerts WHERE severity = $1 AND created_at < $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.SeverityLow, before)
	if err != nil {
		return 0, fmt.Errorf("purge low alerts: %w", err)
	}

	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (*domain.Alert, error) {
	var (
		a       domain.Alert
		details []byte
	)
	err := row.Scan(
		&a.ID, &a.DJID, &a.Date, &a.BookingID, &a.Kind, &a.Severity,
		&details, &a.Status, &a.ReviewerID, &a.ReviewedAt, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("scan alert: %w", err)
	}

	if len(details) > 0 {
		if err = json.Unmarshal(details, &a.Details); err != nil {
			return nil, fmt.Errorf("unmarshal details: %w", err)
		}
	}

	return &a, nil
}

func scanAlerts(rows *sql.Rows) ([]*domain.Alert, error) {
	var res []*domain.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}
