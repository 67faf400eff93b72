package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedMocks struct {
	teams       *MockTeamRepository
	users       *MockUserRepository
	activities  *MockActivityRepository
	leaderboard *MockLeaderboardRepository
	workouts    *MockWorkoutRepository
	transactor  *MockTransactor
	board       *MockLeaderboardService

	insertedTeams      []*domain.Team
	insertedUsers      []*domain.User
	insertedActivities []*domain.Activity
	insertedWorkouts   []*domain.Workout
}

func newSeedMocks() *seedMocks {
	m := &seedMocks{
		teams:       new(MockTeamRepository),
		users:       new(MockUserRepository),
		activities:  new(MockActivityRepository),
		leaderboard: new(MockLeaderboardRepository),
		workouts:    new(MockWorkoutRepository),
		board:       new(MockLeaderboardService),
	}
	m.transactor = &MockTransactor{Repos: repository.Repositories{
		Teams:       m.teams,
		Users:       m.users,
		Activities:  m.activities,
		Leaderboard: m.leaderboard,
		Workouts:    m.workouts,
	}}
	return m
}

// expectInserts принимает все вставки и присваивает записям последовательные id
func (m *seedMocks) expectInserts() {
	for _, repo := range []*mock.Mock{&m.leaderboard.Mock, &m.activities.Mock, &m.users.Mock, &m.teams.Mock, &m.workouts.Mock} {
		repo.On("DeleteAll", mock.Anything).Return(nil).Once()
	}

	m.teams.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).Run(func(args mock.Arguments) {
		team := args.Get(1).(*domain.Team)
		team.ID = fmt.Sprintf("team-%d", len(m.insertedTeams)+1)
		m.insertedTeams = append(m.insertedTeams, team)
	}).Return(nil)
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		user.ID = fmt.Sprintf("user-%d", len(m.insertedUsers)+1)
		m.insertedUsers = append(m.insertedUsers, user)
	}).Return(nil)
	m.activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Run(func(args mock.Arguments) {
		m.insertedActivities = append(m.insertedActivities, args.Get(1).(*domain.Activity))
	}).Return(nil)
	m.workouts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Workout")).Run(func(args mock.Arguments) {
		m.insertedWorkouts = append(m.insertedWorkouts, args.Get(1).(*domain.Workout))
	}).Return(nil)
}

func TestSeedService_Seed(t *testing.T) {
	t.Run("загружает полный набор данных и пересчитывает таблицу", func(t *testing.T) {
		m := newSeedMocks()
		m.expectInserts()
		m.transactor.On("WithinTx", mock.Anything).Return(nil).Once()
		m.board.On("Recompute", mock.Anything).Return(make([]*domain.LeaderboardView, 10), nil).Once()

		service := NewSeedService(m.transactor, m.board, rand.New(rand.NewSource(7)), nil)
		summary, err := service.Seed(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Teams)
		assert.Equal(t, 10, summary.Users)
		assert.Equal(t, 7, summary.Workouts)
		assert.Equal(t, 10, summary.Leaderboard)
		assert.Equal(t, len(m.insertedActivities), summary.Activities)
		assert.GreaterOrEqual(t, summary.Activities, 50)
		assert.LessOrEqual(t, summary.Activities, 100)
		m.board.AssertExpectations(t)
		m.teams.AssertExpectations(t)
	})

	t.Run("каждая команда получает пятерых, каждая активность ссылается на пользователя", func(t *testing.T) {
		m := newSeedMocks()
		m.expectInserts()
		m.transactor.On("WithinTx", mock.Anything).Return(nil).Once()
		m.board.On("Recompute", mock.Anything).Return([]*domain.LeaderboardView{}, nil).Once()

		service := NewSeedService(m.transactor, m.board, rand.New(rand.NewSource(11)), nil)
		_, err := service.Seed(context.Background())
		require.NoError(t, err)

		perTeam := make(map[string]int)
		emails := make(map[string]bool)
		userIDs := make(map[string]bool)
		for _, u := range m.insertedUsers {
			require.NotNil(t, u.TeamID)
			perTeam[*u.TeamID]++
			assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
			emails[u.Email] = true
			userIDs[u.ID] = true
		}
		assert.Equal(t, map[string]int{"team-1": 5, "team-2": 5}, perTeam)

		perUser := make(map[string]int)
		for _, a := range m.insertedActivities {
			assert.True(t, userIDs[a.UserID], "activity references unknown user %s", a.UserID)
			perUser[a.UserID]++
		}
		for id := range userIDs {
			assert.GreaterOrEqual(t, perUser[id], 5)
			assert.LessOrEqual(t, perUser[id], 10)
		}

		for _, w := range m.insertedWorkouts {
			require.NoError(t, w.Validate())
		}
		assert.Equal(t, "Team Marvel", m.insertedTeams[0].Name)
		assert.Equal(t, "Tony Stark", m.insertedUsers[0].Name)
	})

	t.Run("ошибка транзакции: пересчет не запускается", func(t *testing.T) {
		m := newSeedMocks()
		m.transactor.On("WithinTx", mock.Anything).Return(errors.New("begin tx: connection refused")).Once()

		service := NewSeedService(m.transactor, m.board, rand.New(rand.NewSource(1)), nil)
		_, err := service.Seed(context.Background())

		require.Error(t, err)
		m.board.AssertNotCalled(t, "Recompute", mock.Anything)
	})

	t.Run("ошибка вставки прерывает загрузку", func(t *testing.T) {
		m := newSeedMocks()
		for _, repo := range []*mock.Mock{&m.leaderboard.Mock, &m.activities.Mock, &m.users.Mock, &m.teams.Mock, &m.workouts.Mock} {
			repo.On("DeleteAll", mock.Anything).Return(nil).Once()
		}
		m.teams.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		m.transactor.On("WithinTx", mock.Anything).Return(nil).Once()

		service := NewSeedService(m.transactor, m.board, rand.New(rand.NewSource(1)), nil)
		summary, err := service.Seed(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Team Marvel")
		assert.Equal(t, SeedSummary{}, summary)
		m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.board.AssertNotCalled(t, "Recompute", mock.Anything)
	})

	t.Run("ошибка пересчета возвращается вызывающему", func(t *testing.T) {
		m := newSeedMocks()
		m.expectInserts()
		m.transactor.On("WithinTx", mock.Anything).Return(nil).Once()
		m.board.On("Recompute", mock.Anything).
			Return(nil, &domain.AggregationError{Cause: errors.New("timeout")}).Once()

		service := NewSeedService(m.transactor, m.board, rand.New(rand.NewSource(3)), nil)
		_, err := service.Seed(context.Background())

		assert.True(t, errors.Is(err, domain.ErrAggregationFailure))
	})
}

func TestGenerateActivities(t *testing.T) {
	t.Run("значения в допустимых пределах", func(t *testing.T) {
		rng := rand.New(rand.NewSource(99))
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		for round := 0; round < 100; round++ {
			activities := GenerateActivities(rng, "u1", now)

			require.GreaterOrEqual(t, len(activities), 5)
			require.LessOrEqual(t, len(activities), 10)
			for i, a := range activities {
				require.NoError(t, a.Validate())
				assert.Equal(t, "u1", a.UserID)
				assert.GreaterOrEqual(t, a.Duration, 15.0)
				assert.LessOrEqual(t, a.Duration, 120.0)
				assert.False(t, a.Date.After(now))
				assert.False(t, a.Date.Before(now.AddDate(0, 0, -30)))
				assert.Equal(t, fmt.Sprintf("Great workout session #%d", i+1), a.Notes)
			}
		}
	})

	t.Run("одинаковое зерно дает одинаковые данные", func(t *testing.T) {
		now := time.Now()

		first := GenerateActivities(rand.New(rand.NewSource(5)), "u1", now)
		second := GenerateActivities(rand.New(rand.NewSource(5)), "u1", now)

		assert.Equal(t, first, second)
	})
}
