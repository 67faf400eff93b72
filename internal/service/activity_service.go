package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type ActivityService interface {
	// LogActivity сохраняет активность существующего пользователя
	LogActivity(ctx context.Context, activity *domain.Activity) (*domain.ActivityView, error)
	GetActivity(ctx context.Context, id string) (*domain.ActivityView, error)
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityView, error)
	UpdateActivity(ctx context.Context, id string, patch domain.ActivityPatch) (*domain.ActivityView, error)
	DeleteActivity(ctx context.Context, id string) error
}
