package websocket

import (
	"context"
	"log"
	"sync"
)

// frame is one WebSocket data message, relayed exactly as it was read.
type frame struct {
	kind int
	data []byte
}

// outbound is a frame on its way to every member of a room except its sender.
type outbound struct {
	room   string
	sender *Client
	msg    frame
}

// Hub maintains the set of active clients grouped by room and relays
// messages between them. All membership changes happen on the Run goroutine.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Rooms mapping (room key -> clients)
	rooms map[string]map[*Client]bool

	// Guards clients and rooms for readers outside Run
	mu sync.RWMutex

	// Inbound messages from the clients
	broadcast chan outbound

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	done chan struct{}
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan outbound),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes hub events until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("[hub] Shutting down...")
			h.closeAllClients()
			close(h.done)
			return
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case msg := <-h.broadcast:
			h.handleBroadcast(msg)
		}
	}
}

// Wait blocks until Run has returned or ctx is done.
func (h *Hub) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Register adds a client to its room. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast relays a frame from sender to the other clients in its room.
func (h *Hub) Broadcast(sender *Client, kind int, data []byte) {
	select {
	case h.broadcast <- outbound{room: sender.room, sender: sender, msg: frame{kind: kind, data: data}}:
	case <-h.done:
	}
}

// ClientCount returns the total number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomClientCount returns the number of clients in a room.
func (h *Hub) RoomClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, ok := h.rooms[client.room]; !ok {
		h.rooms[client.room] = make(map[*Client]bool)
	}
	h.rooms[client.room][client] = true
	log.Printf("[hub] Client %s joined room %s (%d connected)", client.id, client.room, len(h.rooms[client.room]))
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	if members, ok := h.rooms[client.room]; ok {
		delete(members, client)
		// Clean up empty rooms
		if len(members) == 0 {
			delete(h.rooms, client.room)
		}
	}
	log.Printf("[hub] Client %s left room %s", client.id, client.room)
}

// handleBroadcast hands the frame to every peer's send queue. A full queue
// loses this one frame for that peer only.
func (h *Hub) handleBroadcast(msg outbound) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[msg.room] {
		if client == msg.sender {
			continue
		}
		select {
		case client.send <- msg.msg:
		default:
			log.Printf("[hub] Send queue full for client %s in room %s, dropping message", client.id, msg.room)
		}
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
	}
	h.clients = make(map[*Client]bool)
	h.rooms = make(map[string]map[*Client]bool)
}
