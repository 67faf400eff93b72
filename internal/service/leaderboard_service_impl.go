package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/observability"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

type leaderboardService struct {
	userRepo        repository.UserRepository
	activityRepo    repository.ActivityRepository
	leaderboardRepo repository.LeaderboardRepository
	resolver        *Resolver
	logger          *slog.Logger
	score           domain.ScoreFunc

	mu sync.Mutex
}

type LeaderboardOption func(*leaderboardService)

// WithScoreFunc заменяет функцию подсчета балла (по умолчанию сумма минут)
func WithScoreFunc(fn domain.ScoreFunc) LeaderboardOption {
	return func(s *leaderboardService) {
		if fn != nil {
			s.score = fn
		}
	}
}

func NewLeaderboardService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	leaderboardRepo repository.LeaderboardRepository,
	resolver *Resolver,
	logger *slog.Logger,
	opts ...LeaderboardOption,
) LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &leaderboardService{
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		leaderboardRepo: leaderboardRepo,
		resolver:        resolver,
		logger:          logger,
		score:           domain.DurationScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Standing - балл одного пользователя до присвоения ранга
type Standing struct {
	UserID string
	Score  float64
}

// RankStandings сортирует по убыванию балла с сохранением входного порядка при равенстве
// и присваивает ранги 1..N без пропусков
func RankStandings(standings []Standing) []*domain.LeaderboardEntry {
	sorted := make([]Standing, len(standings))
	copy(sorted, standings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	entries := make([]*domain.LeaderboardEntry, 0, len(sorted))
	for i, st := range sorted {
		entries = append(entries, &domain.LeaderboardEntry{
			UserID: st.UserID,
			Score:  st.Score,
			Rank:   i + 1,
		})
	}
	return entries
}

func (s *leaderboardService) Recompute(ctx context.Context) ([]*domain.LeaderboardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	entries, err := s.recompute(ctx)
	if err != nil {
		observability.RecordRecompute(observability.StatusFailure, time.Since(start), 0)
		s.logger.ErrorContext(ctx, "leaderboard recompute failed", slog.Any("error", err))
		return nil, err
	}

	views, err := s.resolver.Leaderboard(ctx, entries)
	if err != nil {
		// Лидерборд уже сохранен, поэтому отдаем записи без отображаемых имен
		s.logger.WarnContext(ctx, "leaderboard recomputed without display names", slog.Any("error", err))
		views = bareViews(entries)
	}

	observability.RecordRecompute(observability.StatusSuccess, time.Since(start), len(entries))
	s.logger.InfoContext(ctx, "leaderboard recomputed",
		slog.Int("entries", len(entries)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return views, nil
}

func bareViews(entries []*domain.LeaderboardEntry) []*domain.LeaderboardView {
	views := make([]*domain.LeaderboardView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &domain.LeaderboardView{Entry: entry})
	}
	return views
}

func (s *leaderboardService) recompute(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx, domain.UserFilter{})
	if err != nil {
		return nil, &domain.AggregationError{Cause: fmt.Errorf("list users: %w", err)}
	}

	standings := make([]Standing, 0, len(users))
	for _, user := range users {
		activities, err := s.activityRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			return nil, &domain.AggregationError{Cause: fmt.Errorf("list activities of user %s: %w", user.ID, err)}
		}

		var total float64
		for _, activity := range activities {
			total += s.score(activity)
		}
		standings = append(standings, Standing{UserID: user.ID, Score: total})
	}

	entries := RankStandings(standings)
	if err := s.leaderboardRepo.ReplaceAll(ctx, entries); err != nil {
		return nil, &domain.AggregationError{Cause: fmt.Errorf("replace leaderboard: %w", err)}
	}
	return entries, nil
}

func (s *leaderboardService) List(ctx context.Context) ([]*domain.LeaderboardView, error) {
	entries, err := s.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.Leaderboard(ctx, entries)
}

func (s *leaderboardService) Get(ctx context.Context, id string) (*domain.LeaderboardView, error) {
	entry, err := s.leaderboardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "leaderboard entry with id "+id)
	}
	return s.resolver.LeaderboardEntry(ctx, entry)
}
