package domain

import "errors"

// Sentinel errors returned by the room core. Handlers map these onto
// HTTP status codes and stable error categories.
var (
	// Validation - caller's fault, never retried.
	ErrInvalidRoomID       = errors.New("invalid room id")
	ErrInvalidPlayerNumber = errors.New("invalid player number")
	ErrInvalidMove         = errors.New("invalid move")

	// Not found.
	ErrRoomNotFound = errors.New("room not found")

	// Conflict - the caller's action is no longer applicable.
	ErrRoomFull     = errors.New("room full")
	ErrAlreadyMoved = errors.New("move already submitted for this round")

	// Transient store failure, surfaced after bounded internal retries.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Fatal: random id draws kept colliding. Under normal entropy this
	// means the 4-digit space is effectively full.
	ErrIDSpaceExhausted = errors.New("room id space exhausted")
)
