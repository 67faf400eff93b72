package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	teams, err := s.statsRepo.GetTeamStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("team stats: %w", err)
	}

	types, err := s.statsRepo.GetActivityTypeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity type stats: %w", err)
	}

	return &Stats{Teams: teams, ActivityTypes: types}, nil
}
