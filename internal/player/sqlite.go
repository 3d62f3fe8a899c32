package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore stores players in the SQLite players table
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store over an opened database
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (r *SQLiteStore) GetOrCreate(ctx context.Context, userID string, startingChips int64) (*Player, error) {
	player := &Player{UserID: userID}

	err := r.db.QueryRowContext(ctx, `
		SELECT display_name, chips, wins, losses, pushes, rounds
		FROM players WHERE user_id = ?
	`, userID).Scan(
		&player.DisplayName, &player.Chips, &player.Wins,
		&player.Losses, &player.Pushes, &player.Rounds,
	)

	if errors.Is(err, sql.ErrNoRows) {
		player.Chips = startingChips

		_, err = r.db.ExecContext(ctx, `
			INSERT INTO players (user_id, chips)
			VALUES (?, ?)
			ON CONFLICT (user_id) DO NOTHING
		`, userID, player.Chips)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteStore) SaveChips(ctx context.Context, userID string, chips int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO players (user_id, chips)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			chips = excluded.chips, updated_at = CURRENT_TIMESTAMP
	`, userID, chips)

	if err != nil {
		return fmt.Errorf("failed to save chips: %w", err)
	}
	return nil
}

func (r *SQLiteStore) RecordRound(ctx context.Context, userID string, t Tally) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE players SET
			wins = wins + ?, losses = losses + ?, pushes = pushes + ?,
			rounds = rounds + 1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`, t.Wins, t.Losses, t.Pushes, userID)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteStore) SetDisplayName(ctx context.Context, userID, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE players SET display_name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`, name, userID)

	if err != nil {
		return fmt.Errorf("failed to set display name: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
