package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type WorkoutService interface {
	CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, filter domain.WorkoutFilter) ([]*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
}
