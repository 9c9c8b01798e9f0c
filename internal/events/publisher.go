package events

import (
	"context"

	"rps_server/internal/domain"
)

// Publisher is the optional side channel the core writes committed
// state changes to. Delivery is best-effort: a failing publisher must
// never block or fail the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event domain.RoomEvent) error
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event domain.RoomEvent) error {
	return nil
}
