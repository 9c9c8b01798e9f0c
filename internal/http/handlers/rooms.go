package handlers

import (
	"net/http"

	"rps_server/internal/domain"
	"rps_server/internal/room"

	"github.com/gin-gonic/gin"
)

// CreateRoomRequest - at least one of ownerId/ownerName must be set.
// A missing ownerId gets a freshly minted identity.
type CreateRoomRequest struct {
	OwnerID   string `json:"ownerId"`
	OwnerName string `json:"ownerName"`
}

// JoinRoomRequest mirrors CreateRoomRequest for the guest slot.
type JoinRoomRequest struct {
	GuestID   string `json:"guestId"`
	GuestName string `json:"guestName"`
}

// MoveRequest - one move submission for one player slot.
type MoveRequest struct {
	PlayerNumber int    `json:"playerNumber"`
	Move         string `json:"move"`
}

// CreateRoom allocates a room id and writes the initial room state.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error(), "code": "bad_request"})
		return
	}
	if req.OwnerID == "" && req.OwnerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerId or ownerName required", "code": "bad_request"})
		return
	}

	rm, err := h.Rooms.CreateRoom(c.Request.Context(), req.OwnerID, req.OwnerName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roomId": rm.ID, "room": rm.ClientView()})
}

// GetRoom returns the current room state. Moves of an unresolved
// round are withheld.
func (h *Handler) GetRoom(c *gin.Context) {
	rm, err := h.Rooms.GetRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": rm.ID, "room": rm.ClientView()})
}

// JoinRoom admits the guest as player 2. Exactly one concurrent
// joiner wins; the rest see room_full.
func (h *Handler) JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error(), "code": "bad_request"})
		return
	}
	if req.GuestID == "" && req.GuestName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guestId or guestName required", "code": "bad_request"})
		return
	}

	rm, err := h.Rooms.JoinRoom(c.Request.Context(), c.Param("roomId"), req.GuestID, req.GuestName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roomId": rm.ID, "room": rm.ClientView()})
}

// SubmitMove records one player's move, resolving the round when it
// completes the pair.
func (h *Handler) SubmitMove(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error(), "code": "bad_request"})
		return
	}

	outcome, err := h.Rounds.SubmitMove(c.Request.Context(), c.Param("roomId"), req.PlayerNumber, domain.Move(req.Move))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"status": outcome.Status,
		"room":   outcome.Room.ClientView(),
	}
	if outcome.Status == room.StatusGameOver {
		resp["result"] = outcome.Result
	}
	c.JSON(http.StatusOK, resp)
}

// ResetRound clears the round fields, keeping statistics.
func (h *Handler) ResetRound(c *gin.Context) {
	roomID := c.Param("roomId")
	if err := h.Rooms.ResetRound(c.Request.Context(), roomID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "message": "round reset"})
}

// RoundHistory lists recently resolved rounds for a room.
func (h *Handler) RoundHistory(c *gin.Context) {
	if h.History == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history not configured", "code": "history_unavailable"})
		return
	}

	roomID := c.Param("roomId")
	rounds, err := h.History.RecentByRoom(c.Request.Context(), roomID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "internal_error"})
		return
	}
	if rounds == nil {
		rounds = []*domain.RoundRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "rounds": rounds})
}
