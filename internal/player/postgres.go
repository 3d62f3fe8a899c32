package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore stores players in Postgres
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore returns a store over a migrated pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (r *PostgresStore) GetOrCreate(ctx context.Context, userID string, startingChips int64) (*Player, error) {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO players (user_id, chips) VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, startingChips); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	player := &Player{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		SELECT display_name, chips, wins, losses, pushes, rounds
		  FROM players WHERE user_id = $1
	`, userID).Scan(
		&player.DisplayName, &player.Chips, &player.Wins,
		&player.Losses, &player.Pushes, &player.Rounds,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *PostgresStore) SaveChips(ctx context.Context, userID string, chips int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO players (user_id, chips) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		   SET chips = EXCLUDED.chips,
		       updated_at = now()
	`, userID, chips)

	if err != nil {
		return fmt.Errorf("failed to save chips: %w", err)
	}
	return nil
}

func (r *PostgresStore) RecordRound(ctx context.Context, userID string, t Tally) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE players
		   SET wins = wins + $2,
		       losses = losses + $3,
		       pushes = pushes + $4,
		       rounds = rounds + 1,
		       updated_at = now()
		 WHERE user_id = $1
	`, userID, t.Wins, t.Losses, t.Pushes)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return checkTag(tag)
}

func (r *PostgresStore) SetDisplayName(ctx context.Context, userID, name string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE players SET display_name = $2, updated_at = now()
		 WHERE user_id = $1
	`, userID, name)

	if err != nil {
		return fmt.Errorf("failed to set display name: %w", err)
	}
	return checkTag(tag)
}

func checkTag(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
