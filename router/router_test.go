package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CUknot/chat_backend/config"
	"github.com/CUknot/chat_backend/models"
	"github.com/CUknot/chat_backend/websocket"
	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		AllowedOrigins:  []string{"*"},
		SwaggerHost:     "localhost:8080",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendQueueSize:   16,
		MaxMessageSize:  10000,
	}
}

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *websocket.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := websocket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return New(cfg, hub), hub
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGreeting(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello Gin!", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestSignIn(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := do(r, http.MethodPost, "/api/account/signin", `{"name":"alice"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "alice", got["name"])

		id, ok := got["id"].(string)
		require.True(t, ok, "id should be a string, got %T", got["id"])
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
}

func TestSignInEchoesArbitraryFields(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	body := `{"name":"bob","avatar":"😎","color":"#a855f7","status":"online","extra":{"nested":[1,2]},"id":"client-chosen"}`
	w := do(r, http.MethodPost, "/api/account/signin", body)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "bob", got["name"])
	assert.Equal(t, "😎", got["avatar"])
	assert.Equal(t, map[string]interface{}{"nested": []interface{}{1.0, 2.0}}, got["extra"])
	assert.NotEqual(t, "client-chosen", got["id"])
}

func TestSignInRejectsMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "truncated json", body: `{"name":`},
		{name: "array", body: `["alice"]`},
		{name: "null", body: `null`},
		{name: "string", body: `"alice"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/account/signin", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.NotEmpty(t, got["error"])
		})
	}
}

func TestGetRooms(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	var first []models.Room
	for _, path := range []string{"/api/rooms", "/api/rooms?private=true", "/api/rooms?limit=1&q=game"} {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []models.Room
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
		require.Len(t, rooms, 6)
		if first == nil {
			first = rooms
		}
		assert.Equal(t, first, rooms, "path %s", path)
	}

	for _, room := range first {
		assert.Equal(t, room.ID == "3" || room.ID == "5", room.IsPrivate, "room %s", room.ID)
		assert.NotEmpty(t, room.Name)
		assert.NotEmpty(t, room.Icon)
		assert.NotEmpty(t, room.Description)
		assert.NotZero(t, room.MemberCount)
		assert.NotEmpty(t, room.LastActivity)
	}
}

func TestGetRoomChannelsIgnoresRoomID(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	baseline := do(r, http.MethodGet, "/api/rooms/1/channels", "")
	require.Equal(t, http.StatusOK, baseline.Code)

	var detail map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(baseline.Body.Bytes(), &detail))
	for _, key := range []string{"selectRoom", "channels", "online_users", "default_messages"} {
		assert.Contains(t, detail, key)
	}

	for _, id := range []string{"2", "6", "999", "does-not-exist"} {
		w := do(r, http.MethodGet, "/api/rooms/"+id+"/channels", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, baseline.Body.String(), w.Body.String(), "room %s", id)
	}
}

func TestGetChannelMessages(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	baseline := do(r, http.MethodGet, "/api/rooms/1/1/messages", "")
	require.Equal(t, http.StatusOK, baseline.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(baseline.Body.Bytes(), &messages))
	require.Len(t, messages, 3)
	assert.Equal(t, "10:30", messages[0].Time)

	w := do(r, http.MethodGet, "/api/rooms/42/7/messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, baseline.Body.String(), w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","connections":0}`, w.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "localhost:8080", doc["host"])
	assert.Contains(t, doc["paths"], "/api/rooms")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "http://localhost:3000", wantOrigin: "*"},
		{name: "listed origin", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000"},
		{name: "unlisted origin", allowed: []string{"http://localhost:3000"}, origin: "http://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.AllowedOrigins = tt.allowed
			r, _ := newTestRouter(t, cfg)

			req := httptest.NewRequest(http.MethodOptions, "/api/account/signin", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		})
	}
}

func TestChatRoutesShareRooms(t *testing.T) {
	r, hub := newTestRouter(t, testConfig())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	base := "ws" + strings.TrimPrefix(srv.URL, "http")

	party, _, err := gorilla.DefaultDialer.Dial(base+"/ws/chat/4", nil)
	require.NoError(t, err)
	defer party.Close()
	plain, _, err := gorilla.DefaultDialer.Dial(base+"/chat/4", nil)
	require.NoError(t, err)
	defer plain.Close()

	require.Eventually(t, func() bool { return hub.RoomClientCount("4") == 2 }, 2*time.Second, 10*time.Millisecond)

	w := do(r, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok","connections":2}`, w.Body.String())

	require.NoError(t, party.WriteMessage(gorilla.TextMessage, []byte("hello")))
	plain.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := plain.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
