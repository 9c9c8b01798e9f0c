package domain

import "time"

// RoundRecord - durable record of one resolved round
type RoundRecord struct {
	ID          int64     `db:"id" json:"id"`
	RoomID      string    `db:"room_id" json:"room_id"`
	Player1ID   string    `db:"player1_id" json:"player1_id"`
	Player2ID   string    `db:"player2_id" json:"player2_id"`
	Player1Move Move      `db:"player1_move" json:"player1_move"`
	Player2Move Move      `db:"player2_move" json:"player2_move"`
	Result      Result    `db:"result" json:"result"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
