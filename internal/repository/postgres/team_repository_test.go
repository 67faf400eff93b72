package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

// setupTeamRepo создает мок БД и репозиторий для Team
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func TestTeamRepository_Create(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		now := time.Now()
		team := &domain.Team{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"}

		mock.ExpectQuery("INSERT INTO teams").
			WithArgs(sqlmock.AnyArg(), "Team Marvel", "Earth's Mightiest Heroes", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		err := repo.Create(ctx, team)

		require.NoError(t, err)
		assert.NotEmpty(t, team.ID, "ID должен быть сгенерирован")
		assert.Equal(t, now, team.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("заданный ID сохраняется", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		team := &domain.Team{ID: "team-1", Name: "Team DC"}

		mock.ExpectQuery("INSERT INTO teams").
			WithArgs("team-1", "Team DC", "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		require.NoError(t, repo.Create(ctx, team))
		assert.Equal(t, "team-1", team.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_GetByID(t *testing.T) {
	t.Run("успешное получение команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		now := time.Now()
		mock.ExpectQuery("SELECT id, name, description, created_at").
			WithArgs("team-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
				AddRow("team-1", "Team Marvel", "Avengers", now))

		team, err := repo.GetByID(ctx, "team-1")

		require.NoError(t, err)
		assert.Equal(t, "Team Marvel", team.Name)
		assert.Equal(t, "Avengers", team.Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT id, name, description, created_at").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))

		team, err := repo.GetByID(ctx, "missing")

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_Update(t *testing.T) {
	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("UPDATE teams").
			WithArgs("missing", "X", "").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

		err := repo.Update(ctx, &domain.Team{ID: "missing", Name: "X"})

		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM teams WHERE id").
			WithArgs("team-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "team-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM teams WHERE id").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")

		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_List(t *testing.T) {
	repo, mock := setupTeamRepo(t)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, description, created_at FROM teams ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
			AddRow("team-1", "Team Marvel", "", now).
			AddRow("team-2", "Team DC", "", now))

	teams, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "team-1", teams[0].ID)
	assert.Equal(t, "team-2", teams[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
