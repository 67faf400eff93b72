package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.WorkoutFilter) ([]*domain.Workout, error)
	DeleteAll(ctx context.Context) error
}
