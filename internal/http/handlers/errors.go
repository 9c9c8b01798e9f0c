package handlers

import (
	"errors"
	"net/http"

	"rps_server/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps core sentinel errors onto HTTP statuses and
// stable error codes. Every failure body carries both a code and a
// human-readable message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRoomID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId must be exactly 4 digits", "code": "invalid_room_id"})
	case errors.Is(err, domain.ErrInvalidPlayerNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerNumber must be 1 or 2", "code": "invalid_player_number"})
	case errors.Is(err, domain.ErrInvalidMove):
		c.JSON(http.StatusBadRequest, gin.H{"error": "move must be piedra, papel or tijera", "code": "invalid_move"})
	case errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found", "code": "room_not_found"})
	case errors.Is(err, domain.ErrRoomFull):
		c.JSON(http.StatusConflict, gin.H{"error": "room already has two players", "code": "room_full"})
	case errors.Is(err, domain.ErrAlreadyMoved):
		c.JSON(http.StatusConflict, gin.H{"error": "move already submitted for this round", "code": "already_moved"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, retry later", "code": "store_unavailable"})
	case errors.Is(err, domain.ErrIDSpaceExhausted):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no free room ids", "code": "id_space_exhausted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "internal_error"})
	}
}
