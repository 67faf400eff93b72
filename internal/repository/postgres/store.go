package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Teams:       NewTeamRepository(s.db),
		Users:       NewUserRepository(s.db),
		Activities:  NewActivityRepository(s.db),
		Leaderboard: NewLeaderboardRepository(s.db),
		Workouts:    NewWorkoutRepository(s.db),
	}
}

func txRepositories(tx *sql.Tx) repository.Repositories {
	return repository.Repositories{
		Teams:       NewTeamRepositoryWithTx(tx),
		Users:       NewUserRepositoryWithTx(tx),
		Activities:  NewActivityRepositoryWithTx(tx),
		Leaderboard: NewLeaderboardRepositoryWithTx(tx),
		Workouts:    NewWorkoutRepositoryWithTx(tx),
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, txRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
