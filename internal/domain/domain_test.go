package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestDomainError_Is(t *testing.T) {
	t.Run("сравнение по коду", func(t *testing.T) {
		err := fmt.Errorf("get team: %w", NewNotFoundError("team with id t1"))

		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrValidation))
	})

	t.Run("AggregationError несет код и причину", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := error(&AggregationError{Cause: cause})

		assert.True(t, errors.Is(err, ErrAggregationFailure))
		assert.True(t, errors.Is(err, cause))

		var domainErr *DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, CodeAggregationFailure, domainErr.Code)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("уровень по умолчанию и пустая команда", func(t *testing.T) {
		u := &User{Name: "Bruce Wayne", Email: "batman@gotham.com", TeamID: strPtr("")}

		require.NoError(t, u.Validate())
		assert.Equal(t, LevelBeginner, u.FitnessLevel)
		assert.Nil(t, u.TeamID)
	})

	tests := []struct {
		name string
		user User
	}{
		{"без имени", User{Email: "a@b.com"}},
		{"без email", User{Name: "A"}},
		{"некорректный email", User{Name: "A", Email: "not-an-email"}},
		{"неизвестный уровень", User{Name: "A", Email: "a@b.com", FitnessLevel: "legendary"}},
	}
	for _, tt := range tests {
		t.Run("ошибка: "+tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.user.Validate(), ErrValidation))
		})
	}
}

func TestUserPatch_Apply(t *testing.T) {
	t.Run("пустой TeamID снимает команду", func(t *testing.T) {
		u := &User{Name: "Tony", TeamID: strPtr("t1")}

		UserPatch{TeamID: strPtr("")}.Apply(u)

		assert.Nil(t, u.TeamID)
		assert.Equal(t, "Tony", u.Name)
	})

	t.Run("новая команда копируется", func(t *testing.T) {
		id := "t2"
		u := &User{}

		UserPatch{TeamID: &id}.Apply(u)
		id = "changed"

		require.NotNil(t, u.TeamID)
		assert.Equal(t, "t2", *u.TeamID)
	})
}

func TestActivity_Validate(t *testing.T) {
	valid := func() *Activity {
		return &Activity{UserID: "u1", ActivityType: ActivityWalking, Duration: 0, Date: time.Now()}
	}

	t.Run("нулевая длительность допустима", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("ошибка: NaN", func(t *testing.T) {
		a := valid()
		a.Duration = math.NaN()
		assert.True(t, errors.Is(a.Validate(), ErrValidation))
	})

	t.Run("ошибка: нет даты", func(t *testing.T) {
		a := valid()
		a.Date = time.Time{}
		assert.True(t, errors.Is(a.Validate(), ErrValidation))
	})

	t.Run("все перечисленные типы допустимы", func(t *testing.T) {
		assert.Len(t, ActivityTypes, 7)
		for _, typ := range ActivityTypes {
			assert.True(t, typ.Valid(), typ)
		}
		assert.False(t, ActivityType("parkour").Valid())
	})
}

func TestDescribe(t *testing.T) {
	t.Run("запись таблицы лидеров", func(t *testing.T) {
		e := &LeaderboardEntry{Score: 150, Rank: 1}
		assert.Equal(t, "Tony Stark - Rank 1 (Score: 150)", e.Describe("Tony Stark"))
	})

	t.Run("активность с дробной длительностью", func(t *testing.T) {
		a := &Activity{ActivityType: ActivityYoga, Duration: 42.5}
		assert.Equal(t, "Natasha Romanoff - yoga (42.5 min)", a.Describe("Natasha Romanoff"))
	})
}

func TestScoreMetric(t *testing.T) {
	a := &Activity{Duration: 45}

	assert.Equal(t, 45.0, MetricDuration.ScoreFunc()(a))
	assert.Equal(t, 1.0, MetricSessions.ScoreFunc()(a))
	assert.True(t, MetricSessions.Valid())
	assert.False(t, ScoreMetric("calories").Valid())
}

func TestWorkout_Validate(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		w := &Workout{Name: "Rest Day"}

		require.NoError(t, w.Validate())
		assert.Equal(t, LevelBeginner, w.Difficulty)
		assert.NotNil(t, w.Exercises)
	})

	t.Run("ошибка: упражнение без атрибутов", func(t *testing.T) {
		w := &Workout{Name: "Broken", Exercises: []Exercise{{Name: "Plank"}}}

		assert.True(t, errors.Is(w.Validate(), ErrValidation))
	})

	t.Run("ошибка: неизвестная сложность", func(t *testing.T) {
		w := &Workout{Name: "X", Difficulty: "impossible"}

		assert.True(t, errors.Is(w.Validate(), ErrValidation))
	})
}

func TestTeam_Validate(t *testing.T) {
	assert.True(t, errors.Is((&Team{Name: "   "}).Validate(), ErrValidation))
	assert.NoError(t, (&Team{Name: "Team DC"}).Validate())
}
