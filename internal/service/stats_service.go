package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

// Stats - сводка по командам и типам активностей
type Stats struct {
	Teams         []*domain.TeamStat
	ActivityTypes []*domain.ActivityTypeStat
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}
