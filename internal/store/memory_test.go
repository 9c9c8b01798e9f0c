package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rps_server/internal/domain"
)

func TestMemoryStoreReadWrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Read(ctx, "1234"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("Read on empty store: got %v, want ErrRoomNotFound", err)
	}

	room := &domain.Room{ID: "1234", Status: domain.StatusOpen, Owner: domain.Player{ID: "o", Name: "Alice"}}
	if err := s.Write(ctx, room); err != nil {
		t.Fatalf("Write: %v", err)
	}

	exists, err := s.Exists(ctx, "1234")
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v; want true, nil", exists, err)
	}

	got, err := s.Read(ctx, "1234")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Owner.Name != "Alice" || got.Status != domain.StatusOpen {
		t.Fatalf("Read returned wrong room: %+v", got)
	}

	// Mutating the returned copy must not touch the stored document.
	got.Owner.Name = "Mallory"
	again, _ := s.Read(ctx, "1234")
	if again.Owner.Name != "Alice" {
		t.Fatalf("store leaked internal state: %+v", again)
	}
}

func TestMemoryStoreUpdateFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.UpdateFields(ctx, "9999", map[string]any{"status": domain.StatusInRound}); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("UpdateFields on missing room: got %v, want ErrRoomNotFound", err)
	}

	room := &domain.Room{
		ID:     "4821",
		Status: domain.StatusResolved,
		Owner:  domain.Player{ID: "o", Name: "Alice"},
		Round: domain.Round{
			Player1Move: domain.MovePiedra,
			Player2Move: domain.MoveTijera,
			Result:      domain.ResultPlayer1Wins,
			GameOver:    true,
		},
		Stats: domain.Statistics{Player1: domain.PlayerStats{Wins: 1}, Player2: domain.PlayerStats{Losses: 1}},
	}
	if err := s.Write(ctx, room); err != nil {
		t.Fatalf("Write: %v", err)
	}

	err := s.UpdateFields(ctx, "4821", map[string]any{
		"round":  domain.Round{},
		"status": domain.StatusInRound,
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	got, err := s.Read(ctx, "4821")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Round.Player1Move != "" || got.Round.GameOver {
		t.Fatalf("round not cleared: %+v", got.Round)
	}
	if got.Status != domain.StatusInRound {
		t.Fatalf("status = %s; want in_round", got.Status)
	}
	// Sibling fields stay untouched.
	if got.Stats.Player1.Wins != 1 || got.Owner.Name != "Alice" {
		t.Fatalf("siblings were clobbered: %+v", got)
	}
}

func TestMemoryStoreAtomicUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.AtomicUpdate(ctx, "1111", func(r *domain.Room) error { return nil }); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("AtomicUpdate on missing room: got %v, want ErrRoomNotFound", err)
	}

	if err := s.Write(ctx, &domain.Room{ID: "1111", Status: domain.StatusOpen}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// A mutator error aborts the update without writing.
	boom := errors.New("boom")
	if _, err := s.AtomicUpdate(ctx, "1111", func(r *domain.Room) error {
		r.Status = domain.StatusResolved
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("AtomicUpdate: got %v, want mutator error", err)
	}
	got, _ := s.Read(ctx, "1111")
	if got.Status != domain.StatusOpen {
		t.Fatalf("aborted update leaked a write: %+v", got)
	}
}

func TestMemoryStoreAtomicUpdateConcurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Write(ctx, &domain.Room{ID: "2222", Status: domain.StatusInRound}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.AtomicUpdate(ctx, "2222", func(r *domain.Room) error {
				r.Stats.Player1.Wins++
				return nil
			})
			if err != nil {
				t.Errorf("AtomicUpdate: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.Read(ctx, "2222")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Stats.Player1.Wins != workers {
		t.Fatalf("lost updates: wins = %d, want %d", got.Stats.Player1.Wins, workers)
	}
}
