package room

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"rps_server/internal/domain"
	"rps_server/internal/events"
	"rps_server/internal/logger"
	"rps_server/internal/store"

	"github.com/google/uuid"
)

// maxIDAttempts bounds random id draws before creation gives up.
// With a 9000-value space this only triggers when the space is
// effectively full, which is a deployment problem, not a user one.
const maxIDAttempts = 25

var roomIDRe = regexp.MustCompile(`^\d{4}$`)

// ValidRoomID reports whether id has the shape the manager issues:
// exactly 4 ASCII digits.
func ValidRoomID(id string) bool {
	return roomIDRe.MatchString(id)
}

// IdentityDirectory resolves and persists opaque player identities.
// External collaborator; the manager only needs this one method.
type IdentityDirectory interface {
	// EnsurePlayer upserts the player and returns the stored record,
	// resolving the display name when the incoming one is empty.
	EnsurePlayer(ctx context.Context, p domain.Player) (domain.Player, error)
}

// Manager owns room creation, join admission and round reset.
type Manager struct {
	store  store.RoomStore
	ids    IdentityDirectory // may be nil when no identity backend is configured
	events events.Publisher
}

func NewManager(st store.RoomStore, ids IdentityDirectory, pub events.Publisher) *Manager {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Manager{store: st, ids: ids, events: pub}
}

// CreateRoom allocates a fresh 4-digit room id, re-drawing on
// collision, and writes the initial document: status open, owner as
// player 1, guest empty, round and statistics zeroed.
func (m *Manager) CreateRoom(ctx context.Context, ownerID, ownerName string) (*domain.Room, error) {
	owner, err := m.resolvePlayer(ctx, ownerID, ownerName)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := strconv.Itoa(1000 + rand.Intn(9000))
		exists, err := m.store.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		room := &domain.Room{
			ID:        id,
			Status:    domain.StatusOpen,
			Owner:     owner,
			CreatedAt: time.Now().UTC(),
		}
		if err := m.store.Write(ctx, room); err != nil {
			return nil, err
		}

		roomsCreated.Inc()
		m.publish(ctx, domain.EventRoomCreated, room)
		return room, nil
	}

	return nil, domain.ErrIDSpaceExhausted
}

// JoinRoom admits the guest as player 2. The guest-slot precondition
// is checked at commit time inside the store's atomic update, so two
// concurrent joiners cannot both succeed.
func (m *Manager) JoinRoom(ctx context.Context, roomID, guestID, guestName string) (*domain.Room, error) {
	guest, err := m.resolvePlayer(ctx, guestID, guestName)
	if err != nil {
		return nil, err
	}

	updated, err := m.store.AtomicUpdate(ctx, roomID, func(r *domain.Room) error {
		if r.Guest != nil || r.Status != domain.StatusOpen {
			return domain.ErrRoomFull
		}
		g := guest
		r.Guest = &g
		r.Status = domain.StatusInRound
		// Rooms created before the round sub-structure existed get a
		// clean one here.
		r.Round = domain.Round{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	guestsJoined.Inc()
	m.publish(ctx, domain.EventGuestJoined, updated)
	return updated, nil
}

// GetRoom returns the current room state.
func (m *Manager) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if !ValidRoomID(roomID) {
		return nil, domain.ErrInvalidRoomID
	}
	return m.store.Read(ctx, roomID)
}

// ResetRound clears both moves, the result and the gameOver flag,
// leaving statistics untouched. Idempotent: resetting an already
// clean round is a no-op success. The clear commits through the same
// atomic store update as join and move submission, so a reset racing
// a concurrently resolving round cannot revert its statistics.
func (m *Manager) ResetRound(ctx context.Context, roomID string) error {
	if !ValidRoomID(roomID) {
		return domain.ErrInvalidRoomID
	}

	updated, err := m.store.AtomicUpdate(ctx, roomID, func(r *domain.Room) error {
		r.Round = domain.Round{}
		if r.Status == domain.StatusResolved {
			r.Status = domain.StatusInRound
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.publish(ctx, domain.EventRoundReset, updated)
	return nil
}

// resolvePlayer mints an identity when the caller supplies none and
// runs it through the identity directory when one is configured.
func (m *Manager) resolvePlayer(ctx context.Context, id, name string) (domain.Player, error) {
	p := domain.Player{ID: id, Name: name}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if m.ids == nil {
		return p, nil
	}
	return m.ids.EnsurePlayer(ctx, p)
}

// publish fans the event out to subscribed clients, so the embedded
// room goes through ClientView.
func (m *Manager) publish(ctx context.Context, kind domain.EventType, room *domain.Room) {
	event := domain.RoomEvent{
		Type:   kind,
		RoomID: room.ID,
		Room:   room.ClientView(),
		At:     time.Now().UTC(),
	}
	if err := m.events.Publish(ctx, event); err != nil {
		logger.Warn("event publish failed", "room_id", room.ID, "type", string(kind), "error", err)
	}
}
