package service

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type LeaderboardService interface {
	// Recompute пересчитывает баллы всех пользователей и целиком заменяет таблицу лидеров
	Recompute(ctx context.Context) ([]*domain.LeaderboardView, error)
	// List возвращает записи по возрастанию rank
	List(ctx context.Context) ([]*domain.LeaderboardView, error)
	Get(ctx context.Context, id string) (*domain.LeaderboardView, error)
}
