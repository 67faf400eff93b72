package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type StatsRepository interface {
	GetTeamStats(ctx context.Context) ([]*domain.TeamStat, error)
	GetActivityTypeStats(ctx context.Context) ([]*domain.ActivityTypeStat, error)
}
