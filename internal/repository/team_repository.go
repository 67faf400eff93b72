package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Team, error)
	DeleteAll(ctx context.Context) error
}
