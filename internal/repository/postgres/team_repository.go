package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if team.ID == "" {
		team.ID = newID()
	}
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.Description,
		time.Now(),
	).Scan(&team.CreatedAt)

	return mapError(err)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, created_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return team, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, description = $3
		WHERE id = $1
		RETURNING created_at
	`

	err := r.executor.QueryRowContext(ctx, query, team.ID, team.Name, team.Description).Scan(&team.CreatedAt)
	return mapError(err)
}

// Delete удаляет команду. Ссылки users.team_id обнуляются внешним ключом ON DELETE SET NULL
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, name, description, created_at
		FROM teams
		ORDER BY created_at, id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) DeleteAll(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM teams`)
	return mapError(err)
}
