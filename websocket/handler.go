package websocket

import (
	"log"
	"net/http"

	"github.com/CUknot/chat_backend/config"
	"github.com/CUknot/chat_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to relay connections.
type Handler struct {
	hub            *Hub
	upgrader       websocket.Upgrader
	sendQueueSize  int
	maxMessageSize int64
}

// NewHandler builds a Handler that registers connections with hub.
func NewHandler(hub *Hub, cfg config.Config) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		sendQueueSize:  cfg.SendQueueSize,
		maxMessageSize: cfg.MaxMessageSize,
	}
}

// ServeRoom handles websocket connections for the room named by the roomId
// path parameter.
func (h *Handler) ServeRoom(c *gin.Context) {
	room := c.Param("roomId")
	if room == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room id is required"})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] error upgrading connection: %v", err)
		return
	}

	client := &Client{
		id:             utils.GenerateID(),
		room:           room,
		hub:            h.hub,
		conn:           conn,
		send:           make(chan frame, h.sendQueueSize),
		maxMessageSize: h.maxMessageSize,
	}

	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	// Start goroutines for reading and writing
	go client.writePump()
	go client.readPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(r *http.Request) bool { return true }
		}
		set[origin] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Non-browser clients do not send an Origin header
		return origin == "" || set[origin]
	}
}
