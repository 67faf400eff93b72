package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetTeamStats(ctx context.Context) ([]*domain.TeamStat, error) {
	query := `
		SELECT t.id, t.name,
			COUNT(DISTINCT u.id) AS member_count,
			COUNT(a.id) AS activity_count,
			COALESCE(SUM(a.duration), 0) AS total_minutes
		FROM teams t
		LEFT JOIN users u ON u.team_id = t.id
		LEFT JOIN activities a ON a.user_id = u.id
		GROUP BY t.id, t.name
		ORDER BY total_minutes DESC, t.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.TeamStat, 0)
	for rows.Next() {
		stat := &domain.TeamStat{}
		err := rows.Scan(&stat.TeamID, &stat.TeamName, &stat.MemberCount, &stat.ActivityCount, &stat.TotalMinutes)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetActivityTypeStats(ctx context.Context) ([]*domain.ActivityTypeStat, error) {
	query := `
		SELECT activity_type, COUNT(id) AS count, COALESCE(SUM(duration), 0) AS total_minutes
		FROM activities
		GROUP BY activity_type
		ORDER BY activity_type
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.ActivityTypeStat, 0)
	for rows.Next() {
		stat := &domain.ActivityTypeStat{}
		var activityType string
		if err := rows.Scan(&activityType, &stat.Count, &stat.TotalMinutes); err != nil {
			return nil, err
		}
		stat.ActivityType = domain.ActivityType(activityType)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
