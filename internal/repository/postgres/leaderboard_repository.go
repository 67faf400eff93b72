package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

// leaderboardLockKey - ключ advisory-блокировки, сериализующей замену лидерборда
const leaderboardLockKey = 7_270_001

type leaderboardRepository struct {
	// db задан только вне транзакции: тогда ReplaceAll открывает собственную
	db       *sql.DB
	executor DBExecutor
}

func NewLeaderboardRepository(db *sql.DB) *leaderboardRepository {
	return &leaderboardRepository{db: db, executor: db}
}

func NewLeaderboardRepositoryWithTx(tx *sql.Tx) *leaderboardRepository {
	return &leaderboardRepository{executor: tx}
}

func scanEntry(row interface{ Scan(dest ...any) error }) (*domain.LeaderboardEntry, error) {
	entry := &domain.LeaderboardEntry{}
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Score, &entry.Rank); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *leaderboardRepository) GetByID(ctx context.Context, id string) (*domain.LeaderboardEntry, error) {
	query := `SELECT id, user_id, score, rank FROM leaderboard WHERE id = $1`

	entry, err := scanEntry(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return entry, nil
}

func (r *leaderboardRepository) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	query := `SELECT id, user_id, score, rank FROM leaderboard ORDER BY rank, id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	entries := make([]*domain.LeaderboardEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *leaderboardRepository) ReplaceAll(ctx context.Context, entries []*domain.LeaderboardEntry) error {
	if r.db == nil {
		return r.replace(ctx, r.executor, entries)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.replace(ctx, tx, entries); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *leaderboardRepository) replace(ctx context.Context, executor DBExecutor, entries []*domain.LeaderboardEntry) error {
	if _, err := executor.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, leaderboardLockKey); err != nil {
		return fmt.Errorf("lock leaderboard: %w", err)
	}

	if _, err := executor.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return mapError(err)
	}

	query := `
		INSERT INTO leaderboard (id, user_id, score, rank)
		VALUES ($1, $2, $3, $4)
	`
	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = newID()
		}
		if _, err := executor.ExecContext(ctx, query, entry.ID, entry.UserID, entry.Score, entry.Rank); err != nil {
			return mapError(err)
		}
	}

	return nil
}

func (r *leaderboardRepository) DeleteAll(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM leaderboard`)
	return mapError(err)
}
