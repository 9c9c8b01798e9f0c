package handlers

import (
	"context"

	"rps_server/internal/domain"
	"rps_server/internal/room"
)

// RoundHistory lists resolved rounds for a room.
type RoundHistory interface {
	RecentByRoom(ctx context.Context, roomID string, limit int) ([]*domain.RoundRecord, error)
}

type Handler struct {
	Rooms   *room.Manager
	Rounds  *room.Resolver
	History RoundHistory // may be nil when no history backend is configured
}

func NewHandler(rooms *room.Manager, rounds *room.Resolver, history RoundHistory) *Handler {
	return &Handler{
		Rooms:   rooms,
		Rounds:  rounds,
		History: history,
	}
}
