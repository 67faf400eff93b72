package service

import "context"

// SeedSummary - число записей в каждой коллекции после загрузки
type SeedSummary struct {
	Teams       int
	Users       int
	Activities  int
	Leaderboard int
	Workouts    int
}

type SeedService interface {
	// Seed очищает все коллекции, загружает демонстрационные данные и пересчитывает таблицу лидеров
	Seed(ctx context.Context) (SeedSummary, error)
}
