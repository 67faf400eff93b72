package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("referenced record does not exist")
)

// Repositories - набор репозиториев, работающих через одно соединение или одну транзакцию
type Repositories struct {
	Teams       TeamRepository
	Users       UserRepository
	Activities  ActivityRepository
	Leaderboard LeaderboardRepository
	Workouts    WorkoutRepository
}

// Transactor выполняет fn в одной транзакции. Ошибка из fn откатывает все изменения
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
