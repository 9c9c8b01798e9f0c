package repository

import (
	"context"
	"time"

	"rps_server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RoundHistoryRepository records resolved rounds for later listing.
// Writes happen off the request path; the room core never depends on
// this data for correctness.
type RoundHistoryRepository struct {
	db *pgxpool.Pool
}

func NewRoundHistoryRepository(db *pgxpool.Pool) *RoundHistoryRepository {
	return &RoundHistoryRepository{db: db}
}

func (r *RoundHistoryRepository) RecordRound(ctx context.Context, room *domain.Room) error {
	if room.Guest == nil {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO round_history (room_id, player1_id, player2_id, player1_move, player2_move, result)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID,
		room.Owner.ID,
		room.Guest.ID,
		string(room.Round.Player1Move),
		string(room.Round.Player2Move),
		string(room.Round.Result),
	)
	return err
}

// RecentByRoom returns the latest resolved rounds for a room, newest
// first.
func (r *RoundHistoryRepository) RecentByRoom(ctx context.Context, roomID string, limit int) ([]*domain.RoundRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, player1_id, player2_id, player1_move, player2_move, result, created_at
         FROM round_history
         WHERE room_id = $1
         ORDER BY created_at DESC
         LIMIT $2`,
		roomID,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.RoundRecord
	for rows.Next() {
		var (
			rec       domain.RoundRecord
			m1, m2    string
			result    string
			createdAt time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.RoomID, &rec.Player1ID, &rec.Player2ID, &m1, &m2, &result, &createdAt); err != nil {
			return nil, err
		}
		rec.Player1Move = domain.Move(m1)
		rec.Player2Move = domain.Move(m2)
		rec.Result = domain.Result(result)
		rec.CreatedAt = createdAt
		res = append(res, &rec)
	}
	return res, rows.Err()
}
