package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Activity, error)
	DeleteAll(ctx context.Context) error
}
