package room

import (
	"context"
	"time"

	"rps_server/internal/domain"
	"rps_server/internal/events"
	"rps_server/internal/game"
	"rps_server/internal/logger"
	"rps_server/internal/store"
)

// SubmitStatus - outcome of a move submission
type SubmitStatus string

const (
	StatusAwaitingOpponent SubmitStatus = "awaiting_opponent"
	StatusGameOver         SubmitStatus = "game_over"
)

// SubmitOutcome is what a committed move submission produced.
type SubmitOutcome struct {
	Status SubmitStatus
	Result domain.Result // set only when Status == StatusGameOver
	Room   *domain.Room
}

// RoundRecorder persists resolved rounds. External collaborator,
// invoked off the request path.
type RoundRecorder interface {
	RecordRound(ctx context.Context, room *domain.Room) error
}

// Resolver owns move submission, winner determination and statistics
// accumulation.
type Resolver struct {
	store   store.RoomStore
	history RoundRecorder // may be nil when no history backend is configured
	events  events.Publisher
}

func NewResolver(st store.RoomStore, history RoundRecorder, pub events.Publisher) *Resolver {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Resolver{store: st, history: history, events: pub}
}

// SubmitMove records one player's move and, when it completes the
// pair, resolves the round. The write, the both-moves check and the
// result/statistics update happen inside a single atomic store
// update, so two concurrent submissions trigger exactly one
// resolution.
func (rs *Resolver) SubmitMove(ctx context.Context, roomID string, playerNumber int, move domain.Move) (*SubmitOutcome, error) {
	if !ValidRoomID(roomID) {
		return nil, domain.ErrInvalidRoomID
	}
	if playerNumber != 1 && playerNumber != 2 {
		return nil, domain.ErrInvalidPlayerNumber
	}
	if !move.Valid() {
		return nil, domain.ErrInvalidMove
	}

	resolved := false
	updated, err := rs.store.AtomicUpdate(ctx, roomID, func(r *domain.Room) error {
		resolved = false
		if r.MoveOf(playerNumber) != "" {
			return domain.ErrAlreadyMoved
		}
		r.SetMove(playerNumber, move)

		if r.Round.Player1Move == "" || r.Round.Player2Move == "" || r.Round.GameOver {
			return nil
		}

		result, delta1, delta2 := game.ComputeRoundOutcome(r.Round.Player1Move, r.Round.Player2Move)
		r.Round.Result = result
		r.Round.GameOver = true
		r.Status = domain.StatusResolved
		delta1.ApplyTo(&r.Stats.Player1)
		delta2.ApplyTo(&r.Stats.Player2)
		resolved = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !resolved {
		rs.publish(ctx, domain.EventMoveSubmitted, updated)
		return &SubmitOutcome{Status: StatusAwaitingOpponent, Room: updated}, nil
	}

	roundsResolved.WithLabelValues(string(updated.Round.Result)).Inc()
	rs.publish(ctx, domain.EventRoundResolved, updated)
	if rs.history != nil {
		go rs.recordRound(updated)
	}
	return &SubmitOutcome{
		Status: StatusGameOver,
		Result: updated.Round.Result,
		Room:   updated,
	}, nil
}

// recordRound writes the round to durable history off the request
// path. Failures are logged, never surfaced.
func (rs *Resolver) recordRound(room *domain.Room) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rs.history.RecordRound(ctx, room); err != nil {
		logger.Warn("round history insert failed", "room_id", room.ID, "error", err)
	}
}

// publish fans the event out to subscribed clients, so the embedded
// room goes through ClientView.
func (rs *Resolver) publish(ctx context.Context, kind domain.EventType, room *domain.Room) {
	event := domain.RoomEvent{
		Type:   kind,
		RoomID: room.ID,
		Room:   room.ClientView(),
		At:     time.Now().UTC(),
	}
	if err := rs.events.Publish(ctx, event); err != nil {
		logger.Warn("event publish failed", "room_id", room.ID, "type", string(kind), "error", err)
	}
}
