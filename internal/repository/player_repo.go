package repository

import (
	"context"

	"rps_server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlayerRepository persists opaque player identities and their
// display names.
type PlayerRepository struct {
	db *pgxpool.Pool
}

func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// EnsurePlayer upserts the player and returns the stored record. An
// empty incoming display name keeps whatever name is already stored.
func (r *PlayerRepository) EnsurePlayer(ctx context.Context, p domain.Player) (domain.Player, error) {
	var stored domain.Player
	err := r.db.QueryRow(ctx,
		`INSERT INTO players (id, display_name)
         VALUES ($1, NULLIF($2, ''))
         ON CONFLICT (id) DO UPDATE
             SET display_name = COALESCE(NULLIF(EXCLUDED.display_name, ''), players.display_name)
         RETURNING id, COALESCE(display_name, '')`,
		p.ID,
		p.Name,
	).Scan(&stored.ID, &stored.Name)
	if err != nil {
		return domain.Player{}, err
	}
	return stored, nil
}

// GetByID fetches a single player record.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(display_name, '') FROM players WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
