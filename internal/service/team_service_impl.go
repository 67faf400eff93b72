package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := team.Validate(); err != nil {
		return nil, err
	}

	team.ID = ""
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, translateError(err, "team "+team.Name)
	}

	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "team with id "+id)
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) UpdateTeam(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "team with id "+id)
	}

	patch.Apply(team)
	if err := team.Validate(); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, translateError(err, "team with id "+id)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	return translateError(s.teamRepo.Delete(ctx, id), "team with id "+id)
}
