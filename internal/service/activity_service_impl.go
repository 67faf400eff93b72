package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	resolver     *Resolver
	now          func() time.Time
}

func NewActivityService(activityRepo repository.ActivityRepository, userRepo repository.UserRepository, resolver *Resolver) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		resolver:     resolver,
		now:          time.Now,
	}
}

func (s *activityService) LogActivity(ctx context.Context, activity *domain.Activity) (*domain.ActivityView, error) {
	if activity.Date.IsZero() {
		activity.Date = s.now()
	}
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUser(ctx, activity.UserID); err != nil {
		return nil, err
	}

	activity.ID = ""
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, s.writeError(err, activity)
	}

	return s.resolver.Activity(ctx, activity)
}

func (s *activityService) GetActivity(ctx context.Context, id string) (*domain.ActivityView, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "activity with id "+id)
	}
	return s.resolver.Activity(ctx, activity)
}

func (s *activityService) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityView, error) {
	if filter.ActivityType != "" && !filter.ActivityType.Valid() {
		return nil, domain.NewValidationError("invalid activity_type %q", filter.ActivityType)
	}

	activities, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.resolver.Activities(ctx, activities)
}

func (s *activityService) UpdateActivity(ctx context.Context, id string, patch domain.ActivityPatch) (*domain.ActivityView, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "activity with id "+id)
	}

	patch.Apply(activity)
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	if patch.UserID != nil {
		if err := s.checkUser(ctx, activity.UserID); err != nil {
			return nil, err
		}
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("activity with id " + id)
		}
		return nil, s.writeError(err, activity)
	}

	return s.resolver.Activity(ctx, activity)
}

func (s *activityService) DeleteActivity(ctx context.Context, id string) error {
	return translateError(s.activityRepo.Delete(ctx, id), "activity with id "+id)
}

func (s *activityService) checkUser(ctx context.Context, userID string) error {
	_, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewValidationError("user %s does not exist", userID)
	}
	return err
}

func (s *activityService) writeError(err error, activity *domain.Activity) error {
	if errors.Is(err, repository.ErrForeignKey) {
		return domain.NewValidationError("user %s does not exist", activity.UserID)
	}
	return err
}
