package store

import (
	"context"
	"encoding/json"
	"errors"

	"rps_server/internal/domain"

	redis "github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-transaction retries on contention
// before the caller sees a transient store error.
const maxTxRetries = 5

// RedisStore keeps each room as a JSON document under room:<id>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func roomKey(roomID string) string {
	return "room:" + roomID
}

func (s *RedisStore) Exists(ctx context.Context, roomID string) (bool, error) {
	n, err := s.client.Exists(ctx, roomKey(roomID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Read(ctx context.Context, roomID string) (*domain.Room, error) {
	raw, err := s.client.Get(ctx, roomKey(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	var room domain.Room
	if err := json.Unmarshal(raw, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RedisStore) Write(ctx context.Context, room *domain.Room) error {
	buf, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roomKey(room.ID), buf, 0).Err()
}

// UpdateFields merges the given top-level JSON fields into the stored
// document, leaving sibling fields untouched. The merge runs under the
// same WATCH guard as AtomicUpdate: the whole document is rewritten, so
// an unguarded read-then-set could erase a concurrently committed
// update to a sibling field.
func (s *RedisStore) UpdateFields(ctx context.Context, roomID string, fields map[string]any) error {
	key := roomKey(roomID)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrRoomNotFound
		}
		if err != nil {
			return err
		}

		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		for name, value := range fields {
			encoded, err := json.Marshal(value)
			if err != nil {
				return err
			}
			doc[name] = encoded
		}

		buf, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, buf, 0)
			return nil
		})
		return err
	}
	return s.watchRetry(ctx, key, txf)
}

// AtomicUpdate runs mutate inside a WATCH/MULTI/EXEC optimistic
// transaction. If the key changes between read and commit the
// transaction fails and is retried up to maxTxRetries times.
func (s *RedisStore) AtomicUpdate(ctx context.Context, roomID string, mutate func(*domain.Room) error) (*domain.Room, error) {
	key := roomKey(roomID)

	var updated *domain.Room
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrRoomNotFound
		}
		if err != nil {
			return err
		}

		var room domain.Room
		if err := json.Unmarshal(raw, &room); err != nil {
			return err
		}
		if err := mutate(&room); err != nil {
			return err
		}

		buf, err := json.Marshal(&room)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, buf, 0)
			return nil
		})
		if err == nil {
			updated = &room
		}
		return err
	}

	if err := s.watchRetry(ctx, key, txf); err != nil {
		return nil, err
	}
	return updated, nil
}

// watchRetry runs txf under WATCH on key, retrying when a concurrent
// write invalidates the transaction. Retry exhaustion surfaces as a
// transient store error.
func (s *RedisStore) watchRetry(ctx context.Context, key string, txf func(*redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return domain.ErrStoreUnavailable
}
