package controllers

import (
	"net/http"

	"github.com/CUknot/chat_backend/store"
	"github.com/gin-gonic/gin"
)

// GetRooms godoc
// @Summary Get all rooms
// @Description Returns the chat room list
// @Tags rooms
// @Produce json
// @Success 200 {array} models.Room "List of rooms"
// @Router /api/rooms [get]
func GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, store.Rooms())
}

// GetRoomChannels godoc
// @Summary Get a room's channels
// @Description Returns the selected room with its channels, online users and default messages
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} models.RoomDetail "Room detail"
// @Router /api/rooms/{roomId}/channels [get]
func GetRoomChannels(c *gin.Context) {
	c.JSON(http.StatusOK, store.RoomDetail(c.Param("roomId")))
}
