package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// List возвращает пользователей в порядке создания
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error)
	DeleteAll(ctx context.Context) error
}
