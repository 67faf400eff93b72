package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	UpdateTeam(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error)
	// DeleteTeam удаляет команду, ее участники остаются без команды
	DeleteTeam(ctx context.Context, id string) error
}
