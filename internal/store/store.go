package store

import (
	"context"

	"rps_server/internal/domain"
)

// RoomStore is the durable contract the room core operates through.
// Field names in UpdateFields are the JSON keys of the room document
// ("status", "round", ...).
//
// AtomicUpdate is the only primitive allowed for guest-join and move
// submission: the mutator runs against the current document and the
// write commits only if the document was not touched concurrently.
// Returning an error from the mutator aborts the update without a
// write and the error is returned unchanged.
type RoomStore interface {
	Exists(ctx context.Context, roomID string) (bool, error)
	Read(ctx context.Context, roomID string) (*domain.Room, error)
	Write(ctx context.Context, room *domain.Room) error
	UpdateFields(ctx context.Context, roomID string, fields map[string]any) error
	AtomicUpdate(ctx context.Context, roomID string, mutate func(*domain.Room) error) (*domain.Room, error)
}
