package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/CUknot/chat_backend/models"
	"github.com/gorilla/websocket"
)

// Incoming is a frame received from the relay. Frames that decode as a chat
// message populate Message; anything else is kept verbatim in Raw.
type Incoming struct {
	Message *models.Message
	Raw     string
}

// Conn is a relay connection to one room.
type Conn struct {
	ws *websocket.Conn

	mu     sync.Mutex
	nextID int
}

// Dial opens a relay connection to roomID.
func (c *APIClient) Dial(ctx context.Context, roomID string) (*Conn, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws/chat/" + url.PathEscape(roomID)

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial room %s: %w", roomID, err)
	}
	return &Conn{ws: ws}, nil
}

// Send writes msg as a JSON text frame.
func (c *Conn) Send(msg models.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// SendText sends text as a message from user, stamped with the local time.
func (c *Conn) SendText(user models.User, text string) (models.Message, error) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.mu.Unlock()

	msg := models.Message{
		ID:     id,
		Text:   text,
		Sender: user.Name,
		Avatar: user.Avatar,
		Time:   time.Now().Format("15:04"),
		Color:  user.Color,
	}
	return msg, c.Send(msg)
}

// Receive blocks until the next frame arrives.
func (c *Conn) Receive() (Incoming, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return Incoming{}, err
	}

	var msg models.Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.Text == "" {
		return Incoming{Raw: string(data)}, nil
	}
	return Incoming{Message: &msg}, nil
}

// Close sends a normal closure frame and closes the connection.
func (c *Conn) Close() error {
	c.mu.Lock()
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.mu.Unlock()
	return c.ws.Close()
}
