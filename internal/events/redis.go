package events

import (
	"context"
	"encoding/json"

	"rps_server/internal/domain"

	redis "github.com/redis/go-redis/v9"
)

// RedisPublisher fans events out over Redis pub/sub, one channel per
// room. Subscribers (push gateways, bots) are free to come and go.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Channel returns the pub/sub channel name for a room.
func Channel(roomID string) string {
	return "rooms:" + roomID + ":events"
}

func (p *RedisPublisher) Publish(ctx context.Context, event domain.RoomEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, Channel(event.RoomID), payload).Err()
}
