package domain

import "time"

// EventType - room lifecycle notification kinds
type EventType string

const (
	EventRoomCreated   EventType = "room_created"
	EventGuestJoined   EventType = "guest_joined"
	EventMoveSubmitted EventType = "move_submitted"
	EventRoundResolved EventType = "round_resolved"
	EventRoundReset    EventType = "round_reset"
)

// RoomEvent is published after a committed state change. Delivery is
// best-effort and outside the core's correctness contract.
type RoomEvent struct {
	Type   EventType `json:"type"`
	RoomID string    `json:"roomId"`
	Room   *Room     `json:"room,omitempty"`
	At     time.Time `json:"at"`
}
