package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

const userColumns = `id, name, email, team_id, avatar, fitness_level, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	user := &domain.User{}
	var teamID sql.NullString
	var level string
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&teamID,
		&user.Avatar,
		&level,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.TeamID = stringPtr(teamID)
	user.FitnessLevel = domain.FitnessLevel(level)
	return user, nil
}

// Create вставляет пользователя. Повторный email дает repository.ErrDuplicateKey
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, team_id, avatar, fitness_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	if user.ID == "" {
		user.ID = newID()
	}
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		nullString(user.TeamID),
		user.Avatar,
		string(user.FitnessLevel),
		time.Now(),
	).Scan(&user.CreatedAt)

	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, team_id = $4, avatar = $5, fitness_level = $6
		WHERE id = $1
		RETURNING created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		nullString(user.TeamID),
		user.Avatar,
		string(user.FitnessLevel),
	).Scan(&user.CreatedAt)

	return mapError(err)
}

// Delete удаляет пользователя вместе с его активностями и записью в лидерборде (ON DELETE CASCADE)
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	var conditions []string
	var args []any
	if filter.TeamID != "" {
		args = append(args, filter.TeamID)
		conditions = append(conditions, fmt.Sprintf("team_id = $%d", len(args)))
	}
	if filter.FitnessLevel != "" {
		args = append(args, string(filter.FitnessLevel))
		conditions = append(conditions, fmt.Sprintf("fitness_level = $%d", len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM users`)
	return mapError(err)
}
