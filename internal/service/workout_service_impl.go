package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if err := workout.Validate(); err != nil {
		return nil, err
	}

	workout.ID = ""
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, translateError(err, "workout "+workout.Name)
	}
	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "workout with id "+id)
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, filter domain.WorkoutFilter) ([]*domain.Workout, error) {
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, domain.NewValidationError("invalid difficulty %q", filter.Difficulty)
	}
	return s.workoutRepo.List(ctx, filter)
}

func (s *workoutService) UpdateWorkout(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "workout with id "+id)
	}

	patch.Apply(workout)
	if err := workout.Validate(); err != nil {
		return nil, err
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, translateError(err, "workout with id "+id)
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	return translateError(s.workoutRepo.Delete(ctx, id), "workout with id "+id)
}
