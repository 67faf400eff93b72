package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type UserService interface {
	// CreateUser создает пользователя. Занятый email дает DUPLICATE_KEY
	CreateUser(ctx context.Context, user *domain.User) (*domain.UserView, error)
	GetUser(ctx context.Context, id string) (*domain.UserView, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.UserView, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.UserView, error)
	// DeleteUser удаляет пользователя вместе с его активностями
	DeleteUser(ctx context.Context, id string) error
}
