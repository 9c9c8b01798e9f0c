package store

import (
	"context"
	"encoding/json"
	"sync"

	"rps_server/internal/domain"
)

// MemoryStore is an in-process RoomStore used by tests and local runs
// without Redis. A single mutex per store linearizes AtomicUpdate.
type MemoryStore struct {
	mu    sync.Mutex
	rooms map[string]*domain.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: map[string]*domain.Room{}}
}

func (s *MemoryStore) Exists(ctx context.Context, roomID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[roomID]
	return ok, nil
}

func (s *MemoryStore) Read(ctx context.Context, roomID string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room.Clone(), nil
}

func (s *MemoryStore) Write(ctx context.Context, room *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room.Clone()
	return nil
}

func (s *MemoryStore) UpdateFields(ctx context.Context, roomID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}

	// Merge through the JSON representation so field names match the
	// document keys, same as the Redis implementation.
	raw, err := json.Marshal(room)
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
	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	var next domain.Room
	if err := json.Unmarshal(merged, &next); err != nil {
		return err
	}
	s.rooms[roomID] = &next
	return nil
}

func (s *MemoryStore) AtomicUpdate(ctx context.Context, roomID string, mutate func(*domain.Room) error) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	next := room.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.rooms[roomID] = next
	return next.Clone(), nil
}
