package repository

import (
	"context"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type LeaderboardRepository interface {
	GetByID(ctx context.Context, id string) (*domain.LeaderboardEntry, error)
	// List возвращает записи по возрастанию rank
	List(ctx context.Context) ([]*domain.LeaderboardEntry, error)
	// ReplaceAll удаляет все записи и вставляет новый набор атомарно
	ReplaceAll(ctx context.Context, entries []*domain.LeaderboardEntry) error
	DeleteAll(ctx context.Context) error
}
