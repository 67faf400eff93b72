package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type workoutRepository struct {
	executor DBExecutor
}

func NewWorkoutRepository(db *sql.DB) *workoutRepository {
	return &workoutRepository{executor: db}
}

func NewWorkoutRepositoryWithTx(tx *sql.Tx) *workoutRepository {
	return &workoutRepository{executor: tx}
}

func scanWorkout(row interface{ Scan(dest ...any) error }) (*domain.Workout, error) {
	workout := &domain.Workout{}
	var exercises []byte
	var difficulty string
	if err := row.Scan(&workout.ID, &workout.Name, &workout.Description, &exercises, &difficulty); err != nil {
		return nil, err
	}
	workout.Difficulty = domain.Difficulty(difficulty)
	workout.Exercises = []domain.Exercise{}
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &workout.Exercises); err != nil {
			return nil, fmt.Errorf("decode exercises of workout %s: %w", workout.ID, err)
		}
	}
	return workout, nil
}

func encodeExercises(exercises []domain.Exercise) ([]byte, error) {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return json.Marshal(exercises)
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	exercises, err := encodeExercises(workout.Exercises)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO workouts (id, name, description, exercises, difficulty)
		VALUES ($1, $2, $3, $4, $5)
	`

	if workout.ID == "" {
		workout.ID = newID()
	}
	_, err = r.executor.ExecContext(
		ctx,
		query,
		workout.ID,
		workout.Name,
		workout.Description,
		string(exercises),
		string(workout.Difficulty),
	)

	return mapError(err)
}

func (r *workoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	query := `SELECT id, name, description, exercises, difficulty FROM workouts WHERE id = $1`

	workout, err := scanWorkout(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return workout, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	exercises, err := encodeExercises(workout.Exercises)
	if err != nil {
		return err
	}

	query := `
		UPDATE workouts
		SET name = $2, description = $3, exercises = $4, difficulty = $5
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		workout.ID,
		workout.Name,
		workout.Description,
		string(exercises),
		string(workout.Difficulty),
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *workoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(result)
}

func (r *workoutRepository) List(ctx context.Context, filter domain.WorkoutFilter) ([]*domain.Workout, error) {
	query := `SELECT id, name, description, exercises, difficulty FROM workouts`
	var args []any
	if filter.Difficulty != "" {
		query += ` WHERE difficulty = $1`
		args = append(args, string(filter.Difficulty))
	}
	query += ` ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	workouts := make([]*domain.Workout, 0)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, rows.Err()
}

func (r *workoutRepository) DeleteAll(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM workouts`)
	return mapError(err)
}
