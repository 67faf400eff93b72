package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type activityRepository struct {
	executor DBExecutor
}

func NewActivityRepository(db *sql.DB) *activityRepository {
	return &activityRepository{executor: db}
}

func NewActivityRepositoryWithTx(tx *sql.Tx) *activityRepository {
	return &activityRepository{executor: tx}
}

const activityColumns = `id, user_id, activity_type, duration, date, notes`

func scanActivity(row interface{ Scan(dest ...any) error }) (*domain.Activity, error) {
	activity := &domain.Activity{}
	var activityType string
	err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activityType,
		&activity.Duration,
		&activity.Date,
		&activity.Notes,
	)
	if err != nil {
		return nil, err
	}
	activity.ActivityType = domain.ActivityType(activityType)
	return activity, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, activity_type, duration, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if activity.ID == "" {
		activity.ID = newID()
	}
	_, err := r.executor.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.UserID,
		string(activity.ActivityType),
		activity.Duration,
		activity.Date,
		activity.Notes,
	)

	return mapError(err)
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return activity, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET user_id = $2, activity_type = $3, duration = $4, date = $5, notes = $6
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.UserID,
		string(activity.ActivityType),
		activity.Duration,
		activity.Date,
		activity.Notes,
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *activityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	var conditions []string
	var args []any
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.ActivityType != "" {
		args = append(args, string(filter.ActivityType))
		conditions = append(conditions, fmt.Sprintf("activity_type = $%d", len(args)))
	}

	query := `SELECT ` + activityColumns + ` FROM activities`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date DESC, id`

	return r.query(ctx, query, args...)
}

func (r *activityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id = $1 ORDER BY date, id`
	return r.query(ctx, query, userID)
}

func (r *activityRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

func (r *activityRepository) DeleteAll(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM activities`)
	return mapError(err)
}
