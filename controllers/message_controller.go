package controllers

import (
	"net/http"

	"github.com/CUknot/chat_backend/store"
	"github.com/gin-gonic/gin"
)

// GetChannelMessages godoc
// @Summary Get messages for a channel
// @Description Returns the message history of a room channel
// @Tags messages
// @Produce json
// @Param roomId path string true "Room ID"
// @Param channelId path string true "Channel ID"
// @Success 200 {array} models.Message "List of messages"
// @Router /api/rooms/{roomId}/{channelId}/messages [get]
func GetChannelMessages(c *gin.Context) {
	c.JSON(http.StatusOK, store.DefaultMessages())
}
