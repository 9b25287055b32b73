package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RoomHandlers mints room identifiers. Minting is decoupled from the
// membership registry: an identifier is inert until someone joins it
// over the WebSocket, so nothing is stored here.
type RoomHandlers struct {
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{log: logger}
}

// RoomResponse represents the created room identifier.
type RoomResponse struct {
	RoomID string `json:"roomId"`
}

// CreateRoom mints a fresh globally-unique room identifier.
// POST /api/rooms/create
func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	roomID := uuid.NewString()

	h.log.Info().Str("room_id", roomID).Msg("room id created")
	c.JSON(http.StatusCreated, RoomResponse{RoomID: roomID})
}
