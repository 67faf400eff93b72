package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type seedService struct {
	transactor  repository.Transactor
	leaderboard LeaderboardService
	logger      *slog.Logger
	now         func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeedService(transactor repository.Transactor, leaderboard LeaderboardService, rng *rand.Rand, logger *slog.Logger) SeedService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &seedService{
		transactor:  transactor,
		leaderboard: leaderboard,
		logger:      logger,
		now:         time.Now,
		rng:         rng,
	}
}

func (s *seedService) Seed(ctx context.Context) (SeedSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary SeedSummary
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := clearAll(ctx, repos); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "collections cleared")

		var err error
		summary, err = s.insert(ctx, repos)
		return err
	})
	if err != nil {
		return SeedSummary{}, fmt.Errorf("seed database: %w", err)
	}

	entries, err := s.leaderboard.Recompute(ctx)
	if err != nil {
		return summary, err
	}
	summary.Leaderboard = len(entries)

	s.logger.InfoContext(ctx, "database population complete",
		slog.Int("teams", summary.Teams),
		slog.Int("users", summary.Users),
		slog.Int("activities", summary.Activities),
		slog.Int("leaderboard", summary.Leaderboard),
		slog.Int("workouts", summary.Workouts),
	)
	return summary, nil
}

// clearAll удаляет зависимые коллекции раньше тех, на которые они ссылаются
func clearAll(ctx context.Context, repos repository.Repositories) error {
	steps := []struct {
		name  string
		clear func(context.Context) error
	}{
		{"leaderboard", repos.Leaderboard.DeleteAll},
		{"activities", repos.Activities.DeleteAll},
		{"users", repos.Users.DeleteAll},
		{"teams", repos.Teams.DeleteAll},
		{"workouts", repos.Workouts.DeleteAll},
	}
	for _, step := range steps {
		if err := step.clear(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *seedService) insert(ctx context.Context, repos repository.Repositories) (SeedSummary, error) {
	var summary SeedSummary

	teams := seedTeams()
	for _, team := range teams {
		if err := repos.Teams.Create(ctx, team); err != nil {
			return summary, fmt.Errorf("insert team %s: %w", team.Name, err)
		}
	}
	summary.Teams = len(teams)

	now := s.now()
	for _, su := range seedUsers() {
		user := su.user
		teamID := teams[su.team].ID
		user.TeamID = &teamID
		if err := repos.Users.Create(ctx, &user); err != nil {
			return summary, fmt.Errorf("insert user %s: %w", user.Email, err)
		}
		summary.Users++

		for _, activity := range GenerateActivities(s.rng, user.ID, now) {
			if err := repos.Activities.Create(ctx, activity); err != nil {
				return summary, fmt.Errorf("insert activity of user %s: %w", user.Email, err)
			}
			summary.Activities++
		}
	}

	workouts := seedWorkouts()
	for _, workout := range workouts {
		if err := repos.Workouts.Create(ctx, workout); err != nil {
			return summary, fmt.Errorf("insert workout %s: %w", workout.Name, err)
		}
	}
	summary.Workouts = len(workouts)

	return summary, nil
}
