package domain

import "time"

// Move is one of the three throws. The wire vocabulary is Spanish,
// kept for compatibility with the original frontend.
type Move string

const (
	MovePiedra Move = "piedra" // rock
	MovePapel  Move = "papel"  // paper
	MoveTijera Move = "tijera" // scissors
)

// Valid reports whether m is a member of the move enumeration.
func (m Move) Valid() bool {
	return m == MovePiedra || m == MovePapel || m == MoveTijera
}

// Result of a resolved round.
type Result string

const (
	ResultDraw        Result = "draw"
	ResultPlayer1Wins Result = "player1Wins"
	ResultPlayer2Wins Result = "player2Wins"
)

// RoomStatus - room lifecycle state
type RoomStatus string

const (
	StatusOpen     RoomStatus = "open"     // awaiting second player
	StatusInRound  RoomStatus = "in_round" // both players present, round not resolved
	StatusResolved RoomStatus = "resolved" // round complete, awaiting reset
)

// Player is an opaque identity plus display name.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Round holds the current exchange of moves. Result is set if and only
// if both moves are set.
type Round struct {
	Player1Move Move   `json:"player1Move,omitempty"`
	Player2Move Move   `json:"player2Move,omitempty"`
	Result      Result `json:"result,omitempty"`
	GameOver    bool   `json:"gameOver"`
}

// PlayerStats are cumulative per-player counters for one room.
type PlayerStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Statistics for both players. One player's win is the other's loss;
// a draw increments both draw counters.
type Statistics struct {
	Player1 PlayerStats `json:"player1"`
	Player2 PlayerStats `json:"player2"`
}

// Room is the stored document. Owner is always player 1, fixed at
// creation; Guest is player 2 and is set at most once.
type Room struct {
	ID        string     `json:"roomId"`
	Status    RoomStatus `json:"status"`
	Owner     Player     `json:"owner"`
	Guest     *Player    `json:"guest,omitempty"`
	Round     Round      `json:"round"`
	Stats     Statistics `json:"statistics"`
	CreatedAt time.Time  `json:"createdAt"`
}

// MoveOf returns the stored move for player slot 1 or 2.
func (r *Room) MoveOf(playerNumber int) Move {
	if playerNumber == 1 {
		return r.Round.Player1Move
	}
	return r.Round.Player2Move
}

// SetMove writes the move for player slot 1 or 2.
func (r *Room) SetMove(playerNumber int, m Move) {
	if playerNumber == 1 {
		r.Round.Player1Move = m
	} else {
		r.Round.Player2Move = m
	}
}

// Clone returns a deep copy so callers can mutate without aliasing
// store-internal state.
func (r *Room) Clone() *Room {
	cp := *r
	if r.Guest != nil {
		g := *r.Guest
		cp.Guest = &g
	}
	return &cp
}

// ClientView returns a copy safe to show either player. While the
// round is still open the stored moves are hidden, so a polling
// opponent cannot read the first mover's choice before committing
// their own.
func (r *Room) ClientView() *Room {
	cp := r.Clone()
	if !cp.Round.GameOver {
		cp.Round.Player1Move = ""
		cp.Round.Player2Move = ""
	}
	return cp
}
